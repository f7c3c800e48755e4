package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testEventID = "507f1f77bcf86cd799439011"
	testUserID  = "507f1f77bcf86cd799439022"
	// header {"alg":"HS256","typ":"JWT"}, payload {"_id":"507f1f77bcf86cd799439011"}
	testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJfaWQiOiI1MDdmMWY3N2JjZjg2Y2Q3OTk0MzkwMTEifQ.c2ln"
)

func runCommand(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--server", server}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "ada@example.com" || body.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": testToken})
	})

	mux.HandleFunc("GET /api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "jwt required"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"_id": testUserID, "name": "Ada", "email": "ada@example.com",
		})
	})

	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"_id": testEventID, "title": "Picnic", "date": "2026-09-12T19:30:00Z"},
			},
			"meta": map[string]int{"page": 1, "pages": 3, "total": 25, "limit": 12},
		})
	})

	mux.HandleFunc("POST /api/users/me/favorites/"+testEventID, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "jwt required"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_PersistsTokenAndPrintsProfile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EVENTHIVE_CONFIG_DIR", dir)
	srv := newBackend(t)

	out, err := runCommand(t, srv.URL+"/api",
		"login", "--email", "ada@example.com", "--password", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	var payload struct {
		Data struct {
			ID   string `json:"_id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if payload.Data.ID != testUserID || payload.Data.Name != "Ada" {
		t.Fatalf("unexpected profile: %+v", payload.Data)
	}

	b, err := os.ReadFile(filepath.Join(dir, "token"))
	if err != nil {
		t.Fatalf("token not persisted: %v", err)
	}
	if strings.TrimSpace(string(b)) != testToken {
		t.Fatalf("persisted token mismatch")
	}
}

func TestLogin_RejectsBadCredentialsWithoutPersisting(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EVENTHIVE_CONFIG_DIR", dir)
	srv := newBackend(t)

	_, err := runCommand(t, srv.URL+"/api",
		"login", "--email", "ada@example.com", "--password", "wrongpw")
	if err == nil {
		t.Fatalf("expected error for bad credentials")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "token")); !os.IsNotExist(statErr) {
		t.Fatalf("no token may be written on failed login")
	}
}

func TestLogin_ValidatesBeforeNetwork(t *testing.T) {
	t.Setenv("EVENTHIVE_CONFIG_DIR", t.TempDir())

	// Unreachable server: validation must fail first, no dial attempted.
	_, err := runCommand(t, "http://127.0.0.1:1/api",
		"login", "--email", "not-an-email", "--password", "secret1")
	if err == nil || !strings.Contains(err.Error(), "email") {
		t.Fatalf("expected email validation error, got %v", err)
	}
}

func TestEventsList_PrintsEnvelope(t *testing.T) {
	t.Setenv("EVENTHIVE_CONFIG_DIR", t.TempDir())
	srv := newBackend(t)

	out, err := runCommand(t, srv.URL+"/api", "events", "list")
	if err != nil {
		t.Fatalf("events list failed: %v", err)
	}

	var payload struct {
		Data []struct {
			ID    string `json:"_id"`
			Title string `json:"title"`
		} `json:"data"`
		Meta struct {
			Page  int `json:"page"`
			Pages int `json:"pages"`
			Total int `json:"total"`
		} `json:"meta"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(payload.Data) != 1 || payload.Data[0].Title != "Picnic" {
		t.Fatalf("unexpected data: %+v", payload.Data)
	}
	if payload.Meta.Pages != 3 || payload.Meta.Total != 25 {
		t.Fatalf("meta not passed through: %+v", payload.Meta)
	}
}

func TestFavoritesAdd_RequiresLogin(t *testing.T) {
	t.Setenv("EVENTHIVE_CONFIG_DIR", t.TempDir())
	srv := newBackend(t)

	_, err := runCommand(t, srv.URL+"/api", "favorites", "add", testEventID)
	if err == nil || !strings.Contains(err.Error(), "login") {
		t.Fatalf("expected not-logged-in error, got %v", err)
	}
}

func TestFavoritesAdd_RejectsMalformedID(t *testing.T) {
	t.Setenv("EVENTHIVE_CONFIG_DIR", t.TempDir())

	_, err := runCommand(t, "http://127.0.0.1:1/api", "favorites", "add", "not-hex")
	if err == nil || !strings.Contains(err.Error(), "id") {
		t.Fatalf("expected malformed id error, got %v", err)
	}
}

func TestEventsDelete_RefusesWithoutYes(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EVENTHIVE_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "token"), []byte(testToken), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := runCommand(t, "http://127.0.0.1:1/api", "events", "delete", testEventID)
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected --yes refusal, got %v", err)
	}
}
