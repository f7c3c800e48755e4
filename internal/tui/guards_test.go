package tui

import (
	"testing"

	"eventhive-cli/internal/model"
	"eventhive-cli/internal/session"
)

func TestResolveView_WhileLoadingNothingRedirects(t *testing.T) {
	sess := session.Session{IsLoading: true}
	for _, target := range []view{viewEvents, viewFavorites, viewProfile, viewLogin, viewEventForm} {
		got, settled := resolveView(target, sess)
		if settled {
			t.Fatalf("view %d settled while session loading", target)
		}
		if got != target {
			t.Fatalf("view %d redirected to %d while loading", target, got)
		}
	}
}

func TestResolveView_AnonymousHitsLoginForAuthViews(t *testing.T) {
	sess := session.Session{}
	for _, target := range []view{viewFavorites, viewProfile, viewEventForm} {
		got, settled := resolveView(target, sess)
		if !settled || got != viewLogin {
			t.Fatalf("anonymous access to view %d resolved to %d", target, got)
		}
	}

	// Public views stay put.
	for _, target := range []view{viewEvents, viewDetail, viewLogin, viewSignup} {
		got, _ := resolveView(target, sess)
		if got != target {
			t.Fatalf("public view %d redirected to %d", target, got)
		}
	}
}

func TestResolveView_SignedInLeavesAuthForms(t *testing.T) {
	sess := session.Session{IsLoggedIn: true, User: &model.User{ID: "u1"}}
	for _, target := range []view{viewLogin, viewSignup} {
		got, settled := resolveView(target, sess)
		if !settled || got != viewEvents {
			t.Fatalf("signed-in access to view %d resolved to %d", target, got)
		}
	}

	for _, target := range []view{viewEvents, viewFavorites, viewProfile, viewEventForm} {
		got, _ := resolveView(target, sess)
		if got != target {
			t.Fatalf("signed-in view %d redirected to %d", target, got)
		}
	}
}
