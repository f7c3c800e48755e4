// Package validate holds the client-side checks that must pass before any
// network call: missing required fields, malformed URLs, and unparseable
// dates are surfaced inline instead of being bounced off the server.
package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"
)

func Name(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func Email(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return errors.New("email is not valid")
	}
	return nil
}

func Password(s string) error {
	if len(s) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

func EventTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

// EventDate parses the formats users actually type: full RFC3339, date+time
// without zone (interpreted locally), or a bare date.
func EventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("date is required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q is not valid (try 2026-01-31 or 2026-01-31T18:00)", s)
}

// DateBound checks a from/to list filter (YYYY-MM-DD). Empty is allowed.
func DateBound(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("date bound %q is not valid (want YYYY-MM-DD)", s)
	}
	return nil
}

// ImageURL checks an optional image URL: empty is fine, anything else must be
// an absolute http(s) URL.
func ImageURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("image URL must be an absolute http(s) URL")
	}
	return nil
}

func CommentText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("comment text is required")
	}
	return nil
}
