package model

import (
	"encoding/json"
	"testing"
)

func TestUserRefUnmarshal_BareID(t *testing.T) {
	var u UserRef
	if err := json.Unmarshal([]byte(`"507f1f77bcf86cd799439011"`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.ID != "507f1f77bcf86cd799439011" {
		t.Fatalf("id=%q", u.ID)
	}
	if u.Name != "" || u.Email != "" {
		t.Fatalf("expected empty profile fields, got %+v", u)
	}
}

func TestUserRefUnmarshal_EmbeddedObject(t *testing.T) {
	var u UserRef
	raw := `{"_id":"507f1f77bcf86cd799439011","name":"Ada","email":"ada@example.com"}`
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.ID != "507f1f77bcf86cd799439011" || u.Name != "Ada" || u.Email != "ada@example.com" {
		t.Fatalf("got %+v", u)
	}
}

func TestUserRefUnmarshal_Null(t *testing.T) {
	u := UserRef{ID: "stale"}
	if err := json.Unmarshal([]byte(`null`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.ID != "" {
		t.Fatalf("expected cleared ref, got %+v", u)
	}
}

func TestUserRefMarshal_BareID(t *testing.T) {
	b, err := json.Marshal(UserRef{ID: "507f1f77bcf86cd799439011", Name: "Ada"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"507f1f77bcf86cd799439011"` {
		t.Fatalf("got %s", b)
	}
}

func TestRefUnmarshal_ObjectAndString(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`{"_id":"abc"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID() != "abc" {
		t.Fatalf("id=%q", r.ID())
	}
	if err := json.Unmarshal([]byte(`"def"`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID() != "def" {
		t.Fatalf("id=%q", r.ID())
	}
}

func TestCommentLikedBy(t *testing.T) {
	c := Comment{Likes: []Ref{"u1", "u2"}}
	if !c.LikedBy("u1") {
		t.Fatal("expected u1 to be a liker")
	}
	if c.LikedBy("u3") {
		t.Fatal("did not expect u3 to be a liker")
	}
	if c.LikedBy("") {
		t.Fatal("empty user id must never match")
	}
}

func TestEventAttending(t *testing.T) {
	e := Event{Attendees: []UserRef{{ID: "u1"}, {ID: "u2", Name: "B"}}}
	if !e.Attending("u2") {
		t.Fatal("expected u2 attending")
	}
	if e.Attending("u9") {
		t.Fatal("did not expect u9 attending")
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"507f1f77bcf86cd799439011", true},
		{"  507f1f77bcf86cd799439011  ", true},
		{"507f1f77bcf86cd79943901", false},   // 23 chars
		{"507f1f77bcf86cd7994390111", false}, // 25 chars
		{"507f1f77bcf86cd79943901g", false},  // non-hex
		{"", false},
		{"not-an-id", false},
	}
	for _, tt := range tests {
		if got := ValidID(tt.in); got != tt.want {
			t.Errorf("ValidID(%q)=%v want %v", tt.in, got, tt.want)
		}
	}
}
