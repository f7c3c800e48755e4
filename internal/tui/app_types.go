package tui

import (
	"eventhive-cli/internal/model"
	"eventhive-cli/internal/session"
)

type view int

const (
	viewEvents view = iota
	viewDetail
	viewFavorites
	viewLogin
	viewSignup
	viewProfile
	viewEventForm
)

// viewRequiresAuth marks views only a logged-in user may see.
func viewRequiresAuth(v view) bool {
	switch v {
	case viewProfile, viewFavorites, viewEventForm:
		return true
	}
	return false
}

// viewRequiresAnon marks views only an anonymous user may see.
func viewRequiresAnon(v view) bool {
	return v == viewLogin || v == viewSignup
}

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDeleteEvent
	modalConfirmDeleteComment
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

type fetchMode int

const (
	fetchReplace fetchMode = iota
	fetchAppend
)

// Messages produced by async commands. Every network call resolves to
// exactly one of these; errors never escape a command.

type sessionMsg struct {
	sess session.Session
	// Set when the message came from the store subscription rather than a
	// direct Authenticate call; the listener must be re-armed.
	sub bool
}

type loginResultMsg struct {
	token string
	err   error
}

type eventsPageMsg struct {
	mode   fetchMode
	page   int
	limit  int
	events []model.Event
	meta   *model.PageMeta
	err    error
}

type favoritesMsg struct {
	ids map[string]bool
	err error
}

type favToggleDoneMsg struct {
	id     string
	adding bool
	err    error
}

type favoriteEventsMsg struct {
	events []model.Event
	err    error
}

type detailMsg struct {
	event model.Event
	err   error
}

type joinDoneMsg struct {
	event   model.Event
	leaving bool
	err     error
}

type commentsMsg struct {
	eventID  string
	comments []model.Comment
	err      error
}

type commentAddedMsg struct {
	comment model.Comment
	err     error
}

type likeDoneMsg struct {
	commentID string
	comment   model.Comment
	err       error
}

type commentDeletedMsg struct {
	commentID string
	err       error
}

type eventDeletedMsg struct {
	id  string
	err error
}

type eventSavedMsg struct {
	event   model.Event
	editing bool
	err     error
}

type shareCopiedMsg struct {
	url string
	err error
}

type profileMsg struct {
	user model.User
	err  error
}

type flashClearMsg struct {
	seq int
}
