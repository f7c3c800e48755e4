package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"eventhive-cli/internal/api"
	"eventhive-cli/internal/model"
	"eventhive-cli/internal/session"
)

type stubVerifier struct{ err error }

func (s stubVerifier) Verify(ctx context.Context) (model.User, error) {
	return model.User{}, s.err
}

func newTestModel(t *testing.T) appModel {
	t.Helper()
	tokens := session.NewTokenStore(t.TempDir())
	store := session.NewStore(tokens, stubVerifier{err: errors.New("offline")})
	client := api.New("http://127.0.0.1:1/api", tokens, zerolog.Nop())
	return newAppModel(Options{
		Client:   client,
		Session:  store,
		PageSize: 12,
		Log:      zerolog.Nop(),
	})
}

func TestNewAppModel_InitialState(t *testing.T) {
	m := newTestModel(t)

	if m.client == nil {
		t.Fatal("expected the API client to be wired into the model")
	}
	if m.view != viewEvents {
		t.Fatalf("expected initial view %v, got %v", viewEvents, m.view)
	}
	if !m.sess.IsLoading {
		t.Fatal("session should still be verifying on the first frame")
	}
	if !m.list.isLoading {
		t.Fatal("first page fetch should be marked in flight before Init runs")
	}
	if got := m.userID(); got != "" {
		t.Fatalf("no identity while the session is loading, got %q", got)
	}
}

func TestInit_SchedulesBootstrap(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init must schedule the session bootstrap and first page fetch")
	}
}
