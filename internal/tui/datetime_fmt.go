package tui

import (
	"fmt"
	"time"
)

// formatEventDate renders an event date for lists and the detail header,
// e.g. "Sat, 12 Sep 2026 19:30".
func formatEventDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Mon, 2 Jan 2006 15:04")
}

// relativeTime renders a coarse human distance from now, e.g. "in 3 days"
// or "2h ago". Used next to absolute dates, never instead of them.
func relativeTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := t.Sub(now)
	past := d < 0
	if past {
		d = -d
	}

	var span string
	switch {
	case d < time.Minute:
		span = "now"
	case d < time.Hour:
		span = fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		span = fmt.Sprintf("%dh", int(d.Hours()))
	case d < 48*time.Hour:
		span = "1 day"
	case d < 30*24*time.Hour:
		span = fmt.Sprintf("%d days", int(d.Hours()/24))
	case d < 60*24*time.Hour:
		span = "1 month"
	case d < 365*24*time.Hour:
		span = fmt.Sprintf("%d months", int(d.Hours()/(24*30)))
	default:
		years := int(d.Hours() / (24 * 365))
		if years <= 1 {
			span = "1 year"
		} else {
			span = fmt.Sprintf("%d years", years)
		}
	}

	if span == "now" {
		return "now"
	}
	if past {
		return span + " ago"
	}
	return "in " + span
}
