package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Wire types for the EventHive REST API. The server owns every id; the
// client never assigns one.

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Ref is a server-side reference that arrives either as a bare id string or
// as an embedded object carrying an `_id`. It always marshals as the bare id.
type Ref string

func (r *Ref) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*r = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref(id)
		return nil
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*r = Ref(obj.ID)
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r Ref) ID() string { return string(r) }

// UserRef is a user reference that keeps the embedded profile fields when the
// server populated them. Like Ref, it accepts a bare id or an object.
type UserRef struct {
	ID    string
	Name  string
	Email string
}

func (u *UserRef) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*u = UserRef{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*u = UserRef{ID: id}
		return nil
	}
	var obj struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*u = UserRef{ID: obj.ID, Name: obj.Name, Email: obj.Email}
	return nil
}

func (u UserRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ID)
}

type Event struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedBy   UserRef   `json:"createdBy"`
	Attendees   []UserRef `json:"attendees,omitempty"`
}

// Attending reports whether userID is in the event's attendee list.
func (e Event) Attending(userID string) bool {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false
	}
	for _, a := range e.Attendees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

type Comment struct {
	ID            string    `json:"_id"`
	Text          string    `json:"text"`
	Event         Ref       `json:"event"`
	Author        UserRef   `json:"author"`
	CreatedAt     time.Time `json:"createdAt"`
	Likes         []Ref     `json:"likes,omitempty"`
	ParentComment *Ref      `json:"parentComment,omitempty"`
	Replies       []Comment `json:"replies,omitempty"`
}

// LikedBy reports whether userID is in the comment's like list.
func (c Comment) LikedBy(userID string) bool {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false
	}
	for _, l := range c.Likes {
		if l.ID() == userID {
			return true
		}
	}
	return false
}

// PageMeta is the pagination envelope reported by list endpoints.
type PageMeta struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
	Limit int `json:"limit"`
}

// EventPage is the `{data, meta}` list envelope. Meta may be absent on older
// server versions; callers fall back to their request values.
type EventPage struct {
	Data []Event   `json:"data"`
	Meta *PageMeta `json:"meta,omitempty"`
}
