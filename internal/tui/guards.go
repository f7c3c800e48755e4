package tui

import "eventhive-cli/internal/session"

// resolveView applies the route guards. While the session is still being
// verified nothing is redirected; the caller renders a loading placeholder
// instead of flashing the wrong view. Auth-only views send anonymous users
// to the login form; the login/signup forms send signed-in users back to
// the events list.
func resolveView(target view, sess session.Session) (v view, settled bool) {
	if sess.IsLoading {
		return target, false
	}
	if viewRequiresAuth(target) && !sess.IsLoggedIn {
		return viewLogin, true
	}
	if viewRequiresAnon(target) && sess.IsLoggedIn {
		return viewEvents, true
	}
	return target, true
}
