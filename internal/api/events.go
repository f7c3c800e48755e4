package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventhive-cli/internal/model"
)

// Sort keys accepted by the list endpoint.
const (
	SortDateAsc  = "date:asc"
	SortDateDesc = "date:desc"
)

type ListEventsQuery struct {
	Page  int
	Limit int
	Sort  string
	Query string
	// From/To are inclusive date bounds, YYYY-MM-DD.
	From string
	To   string
	// Mine scopes to events created by the session user; Attending to events
	// the session user joined. Both require an authenticated call.
	Mine      bool
	Attending bool
}

func (q ListEventsQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if s := strings.TrimSpace(q.Sort); s != "" {
		v.Set("sort", s)
	}
	if s := strings.TrimSpace(q.Query); s != "" {
		v.Set("q", s)
	}
	if s := strings.TrimSpace(q.From); s != "" {
		v.Set("from", s)
	}
	if s := strings.TrimSpace(q.To); s != "" {
		v.Set("to", s)
	}
	if q.Mine {
		v.Set("mine", "true")
	}
	if q.Attending {
		v.Set("attending", "true")
	}
	return v
}

// ListEvents fetches one page of the public events listing.
func (c *Client) ListEvents(ctx context.Context, q ListEventsQuery) (model.EventPage, error) {
	var out model.EventPage
	if err := c.do(ctx, http.MethodGet, "/events", q.values(), nil, &out); err != nil {
		return model.EventPage{}, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (model.Event, error) {
	var out model.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return model.Event{}, err
	}
	return out, nil
}

type EventParams struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

func (c *Client) CreateEvent(ctx context.Context, p EventParams) (model.Event, error) {
	var out model.Event
	if err := c.do(ctx, http.MethodPost, "/events", nil, p, &out); err != nil {
		return model.Event{}, err
	}
	return out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, p EventParams) (model.Event, error) {
	var out model.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id), nil, p, &out); err != nil {
		return model.Event{}, err
	}
	return out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil, nil)
}

// JoinEvent adds the session user to the attendee list and returns the
// updated event.
func (c *Client) JoinEvent(ctx context.Context, id string) (model.Event, error) {
	var out model.Event
	if err := c.do(ctx, http.MethodPost, "/events/"+url.PathEscape(id)+"/join", nil, nil, &out); err != nil {
		return model.Event{}, err
	}
	return out, nil
}

// LeaveEvent removes the session user from the attendee list and returns the
// updated event.
func (c *Client) LeaveEvent(ctx context.Context, id string) (model.Event, error) {
	var out model.Event
	if err := c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id)+"/join", nil, nil, &out); err != nil {
		return model.Event{}, err
	}
	return out, nil
}
