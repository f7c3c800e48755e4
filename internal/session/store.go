package session

import (
	"context"
	"sync"

	"eventhive-cli/internal/model"
)

// Session is the client-held belief about the current user's authentication
// state, derived from the persisted token and a server verification call.
type Session struct {
	IsLoggedIn bool
	IsLoading  bool
	User       *model.User
}

// Verifier is the slice of the API the session store needs.
type Verifier interface {
	Verify(ctx context.Context) (model.User, error)
}

// Store owns the session state machine:
//
//	Unknown(loading) -> LoggedOut | LoggedIn
//	LoggedIn  -> LoggedOut (logout, or verify failure)
//	LoggedOut -> LoggedIn  (login + verify)
//
// It is injected where needed, never a package-level singleton. Observers
// subscribe for snapshots; the store never calls back into UI code.
type Store struct {
	tokens TokenStore
	api    Verifier

	// authMu serializes Authenticate so two bootstrap calls cannot race and
	// interleave their token-clear/verify steps.
	authMu sync.Mutex

	mu   sync.Mutex
	cur  Session
	subs []chan Session
}

func NewStore(tokens TokenStore, api Verifier) *Store {
	return &Store{
		tokens: tokens,
		api:    api,
		cur:    Session{IsLoading: true},
	}
}

// Current returns the latest session snapshot.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Subscribe returns a channel receiving a snapshot after every transition.
// Sends never block; a slow reader just misses intermediate states.
func (s *Store) Subscribe() <-chan Session {
	ch := make(chan Session, 8)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) transition(next Session) {
	s.mu.Lock()
	s.cur = next
	subs := make([]chan Session, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- next:
		default:
		}
	}
}

// StoreToken persists the token string. Side effect only; the session state
// does not change until the next Authenticate.
func (s *Store) StoreToken(token string) error {
	return s.tokens.Store(token)
}

// Token exposes the persisted token for request injection.
func (s *Store) Token() (string, bool) {
	return s.tokens.Token()
}

// Identity decodes the persisted token's subject, if any.
func (s *Store) Identity() (Identity, bool) {
	tok, ok := s.tokens.Token()
	if !ok {
		return Identity{}, false
	}
	return DecodeIdentity(tok)
}

// Authenticate re-derives the session from the persisted token.
//
// No token: logged out, the verify endpoint is never called. Otherwise the
// token is verified server-side; any failure (401 or network) clears the
// token and logs out. The session always ends with IsLoading=false.
func (s *Store) Authenticate(ctx context.Context) Session {
	s.authMu.Lock()
	defer s.authMu.Unlock()

	if _, ok := s.tokens.Token(); !ok {
		next := Session{IsLoggedIn: false, IsLoading: false, User: nil}
		s.transition(next)
		return next
	}

	user, err := s.api.Verify(ctx)
	if err != nil {
		_ = s.tokens.Clear()
		next := Session{IsLoggedIn: false, IsLoading: false, User: nil}
		s.transition(next)
		return next
	}

	next := Session{IsLoggedIn: true, IsLoading: false, User: &user}
	s.transition(next)
	return next
}

// Logout clears the token and resets state synchronously. No network call.
func (s *Store) Logout() {
	_ = s.tokens.Clear()
	s.transition(Session{IsLoggedIn: false, IsLoading: false, User: nil})
}
