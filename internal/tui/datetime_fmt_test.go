package tui

import (
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(30 * time.Second), "now"},
		{now.Add(5 * time.Minute), "in 5m"},
		{now.Add(-2 * time.Hour), "2h ago"},
		{now.Add(26 * time.Hour), "in 1 day"},
		{now.Add(3 * 24 * time.Hour), "in 3 days"},
		{now.Add(-40 * 24 * time.Hour), "1 month ago"},
		{now.Add(100 * 24 * time.Hour), "in 3 months"},
		{now.Add(2 * 365 * 24 * time.Hour), "in 2 years"},
	}
	for _, tc := range cases {
		if got := relativeTime(tc.at, now); got != tc.want {
			t.Errorf("relativeTime(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}

	if got := relativeTime(time.Time{}, now); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
}

func TestFormatEventDate_Zero(t *testing.T) {
	if got := formatEventDate(time.Time{}); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
}
