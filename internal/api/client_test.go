package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhive-cli/internal/model"

	"github.com/rs/zerolog"
)

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

func newTestClient(t *testing.T, tok string, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, staticToken(tok), zerolog.Nop()), srv
}

func TestDo_AttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth, gotReqID string
	c, _ := newTestClient(t, "T", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(model.User{ID: "u1"})
	})

	if _, err := c.Verify(context.Background()); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if gotAuth != "Bearer T" {
		t.Fatalf("authorization=%q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatal("expected a request id header")
	}
}

func TestDo_OmitsHeaderWithoutToken(t *testing.T) {
	var sawHeader bool
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		json.NewEncoder(w).Encode(model.EventPage{})
	})

	if _, err := c.ListEvents(context.Background(), ListEventsQuery{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if sawHeader {
		t.Fatal("Authorization header must be omitted entirely when no token is stored")
	}
}

func TestDo_NonOKBecomesTypedError(t *testing.T) {
	c, _ := newTestClient(t, "T", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	})

	_, err := c.Verify(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUnauthorized(err) {
		t.Fatalf("expected 401 classification, got %v", err)
	}
	if IsNotFound(err) || IsForbidden(err) {
		t.Fatal("misclassified status")
	}
	apiErr, ok := err.(*Error)
	if !ok || apiErr.Message != "token expired" {
		t.Fatalf("got %#v", err)
	}
}

func TestListEvents_QueryEncoding(t *testing.T) {
	var got map[string]string
	c, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{}
		for k := range r.URL.Query() {
			got[k] = r.URL.Query().Get(k)
		}
		json.NewEncoder(w).Encode(model.EventPage{Meta: &model.PageMeta{Page: 2, Pages: 5, Total: 49, Limit: 12}})
	})

	page, err := c.ListEvents(context.Background(), ListEventsQuery{
		Page: 2, Limit: 12, Sort: SortDateDesc, Query: "picnic",
		From: "2026-01-01", To: "2026-02-01", Attending: true,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := map[string]string{
		"page": "2", "limit": "12", "sort": "date:desc", "q": "picnic",
		"from": "2026-01-01", "to": "2026-02-01", "attending": "true",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("query %s=%q want %q", k, got[k], v)
		}
	}
	if _, ok := got["mine"]; ok {
		t.Error("mine must be absent when false")
	}
	if page.Meta == nil || page.Meta.Total != 49 {
		t.Fatalf("meta=%+v", page.Meta)
	}
}

func TestFavoritesPaths(t *testing.T) {
	var calls []string
	c, _ := newTestClient(t, "T", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	if err := c.AddFavorite(ctx, "507f1f77bcf86cd799439011"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.RemoveFavorite(ctx, "507f1f77bcf86cd799439011"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	want := []string{
		"POST /users/me/favorites/507f1f77bcf86cd799439011",
		"DELETE /users/me/favorites/507f1f77bcf86cd799439011",
	}
	if len(calls) != 2 || calls[0] != want[0] || calls[1] != want[1] {
		t.Fatalf("calls=%v", calls)
	}
}

func TestLikeComment_ReturnsAuthoritativeComment(t *testing.T) {
	c, _ := newTestClient(t, "T", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/comments/c1/like" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(model.Comment{ID: "c1", Likes: []model.Ref{"u1", "u2"}})
	})

	out, err := c.LikeComment(context.Background(), "c1")
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if len(out.Likes) != 2 || !out.LikedBy("u2") {
		t.Fatalf("likes=%v", out.Likes)
	}
}

func TestDo_NetworkFailurePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // dead server

	c := New(srv.URL, staticToken(""), zerolog.Nop())
	_, err := c.ListEvents(context.Background(), ListEventsQuery{})
	if err == nil {
		t.Fatal("expected a network error")
	}
	if IsUnauthorized(err) || IsNotFound(err) {
		t.Fatal("network errors must not classify as API statuses")
	}
}
