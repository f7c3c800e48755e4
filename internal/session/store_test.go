package session

import (
	"context"
	"errors"
	"testing"

	"eventhive-cli/internal/model"
)

type fakeVerifier struct {
	calls int
	user  model.User
	err   error
}

func (f *fakeVerifier) Verify(ctx context.Context) (model.User, error) {
	f.calls++
	return f.user, f.err
}

func newTestStore(t *testing.T, v Verifier) (*Store, TokenStore) {
	t.Helper()
	tokens := NewTokenStore(t.TempDir())
	return NewStore(tokens, v), tokens
}

func TestAuthenticate_NoToken_NeverCallsVerify(t *testing.T) {
	v := &fakeVerifier{user: model.User{ID: "u1"}}
	s, _ := newTestStore(t, v)

	if got := s.Current(); !got.IsLoading {
		t.Fatal("expected initial session to be loading")
	}

	sess := s.Authenticate(context.Background())
	if sess.IsLoggedIn || sess.User != nil {
		t.Fatalf("expected logged-out session, got %+v", sess)
	}
	if sess.IsLoading {
		t.Fatal("authenticate must end with IsLoading=false")
	}
	if v.calls != 0 {
		t.Fatalf("verify must not be called without a token, calls=%d", v.calls)
	}
}

func TestAuthenticate_VerifyFailureClearsToken(t *testing.T) {
	v := &fakeVerifier{err: errors.New("401")}
	s, tokens := newTestStore(t, v)
	if err := tokens.Store("T"); err != nil {
		t.Fatal(err)
	}

	sess := s.Authenticate(context.Background())
	if sess.IsLoggedIn {
		t.Fatal("expected logged-out session after verify failure")
	}
	if _, ok := tokens.Token(); ok {
		t.Fatal("expected token to be cleared after verify failure")
	}
	if v.calls != 1 {
		t.Fatalf("verify calls=%d want 1", v.calls)
	}
}

func TestAuthenticate_Success(t *testing.T) {
	v := &fakeVerifier{user: model.User{ID: "u1", Name: "Ada", Email: "a@b.com"}}
	s, _ := newTestStore(t, v)

	if err := s.StoreToken("T"); err != nil {
		t.Fatal(err)
	}
	sess := s.Authenticate(context.Background())
	if !sess.IsLoggedIn || sess.IsLoading {
		t.Fatalf("expected logged-in session, got %+v", sess)
	}
	if sess.User == nil || sess.User.ID != "u1" {
		t.Fatalf("user=%+v", sess.User)
	}
}

func TestLogout_SynchronousAndOffline(t *testing.T) {
	v := &fakeVerifier{user: model.User{ID: "u1"}}
	s, tokens := newTestStore(t, v)
	if err := tokens.Store("T"); err != nil {
		t.Fatal(err)
	}
	s.Authenticate(context.Background())
	callsBefore := v.calls

	s.Logout()
	if v.calls != callsBefore {
		t.Fatal("logout must not hit the network")
	}
	if _, ok := tokens.Token(); ok {
		t.Fatal("expected token removed on logout")
	}
	if got := s.Current(); got.IsLoggedIn || got.User != nil {
		t.Fatalf("expected logged-out state, got %+v", got)
	}
}

func TestSubscribe_ReceivesTransitions(t *testing.T) {
	v := &fakeVerifier{user: model.User{ID: "u1"}}
	s, _ := newTestStore(t, v)
	ch := s.Subscribe()

	if err := s.StoreToken("T"); err != nil {
		t.Fatal(err)
	}
	s.Authenticate(context.Background())

	select {
	case got := <-ch:
		if !got.IsLoggedIn {
			t.Fatalf("expected logged-in snapshot, got %+v", got)
		}
	default:
		t.Fatal("expected a snapshot on the subscription channel")
	}
}

func TestDecodeIdentity(t *testing.T) {
	// header {"alg":"HS256","typ":"JWT"} + payload {"_id":"507f1f77bcf86cd799439011"}
	// with a junk signature: ParseUnverified must still yield the subject.
	tok := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJfaWQiOiI1MDdmMWY3N2JjZjg2Y2Q3OTk0MzkwMTEifQ." +
		"c2ln"
	id, ok := DecodeIdentity(tok)
	if !ok {
		t.Fatal("expected identity from well-formed payload")
	}
	if id.SubjectID != "507f1f77bcf86cd799439011" {
		t.Fatalf("subject=%q", id.SubjectID)
	}

	for _, bad := range []string{"", "not-a-jwt", "a.b", "a.%%%.c"} {
		if _, ok := DecodeIdentity(bad); ok {
			t.Fatalf("expected no identity for %q", bad)
		}
	}
}
