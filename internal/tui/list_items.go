package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"eventhive-cli/internal/model"
)

type eventItem struct {
	event     model.Event
	favorite  bool
	attending bool
}

func (i eventItem) FilterValue() string {
	return strings.TrimSpace(i.event.Title)
}

func (i eventItem) Title() string {
	title := strings.TrimSpace(i.event.Title)
	if title == "" {
		title = "(untitled)"
	}
	markers := ""
	if i.favorite {
		markers += " " + lipFavorite.Render("★")
	}
	if i.attending {
		markers += " " + lipAttend.Render("✓")
	}
	return title + markers
}

func (i eventItem) metaLine(now time.Time) string {
	parts := make([]string, 0, 4)
	if !i.event.Date.IsZero() {
		parts = append(parts, formatEventDate(i.event.Date)+" ("+relativeTime(i.event.Date, now)+")")
	}
	if loc := strings.TrimSpace(i.event.Location); loc != "" {
		parts = append(parts, loc)
	}
	if cat := strings.TrimSpace(i.event.Category); cat != "" {
		parts = append(parts, cat)
	}
	if n := len(i.event.Attendees); n == 1 {
		parts = append(parts, "1 attendee")
	} else if n > 1 {
		parts = append(parts, strconv.Itoa(n)+" attendees")
	}
	return strings.Join(parts, " · ")
}

func eventItems(events []model.Event, favorites map[string]bool, userID string) []list.Item {
	items := make([]list.Item, 0, len(events))
	for _, ev := range events {
		items = append(items, eventItem{
			event:     ev,
			favorite:  favorites[ev.ID],
			attending: ev.Attending(userID),
		})
	}
	return items
}

func newList(items []list.Item) list.Model {
	l := list.New(items, newEventDelegate(), 0, 0)
	// We render our own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// Server-side search owns filtering; the built-in fuzzy filter would
	// fight the filter bar.
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("ctrl+c")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
