package tui

import (
	"errors"
	"testing"

	"eventhive-cli/internal/model"
)

func ev(id, title string) model.Event {
	return model.Event{ID: id, Title: title}
}

const (
	idA = "507f1f77bcf86cd799439011"
	idB = "507f1f77bcf86cd799439012"
	idC = "507f1f77bcf86cd799439013"
	idD = "507f1f77bcf86cd799439014"
)

func TestApplyPage_ReplaceThenAppendPreservesOrder(t *testing.T) {
	s := newEventsState(2)
	s.beginFetch(fetchReplace)
	s.applyPage(eventsPageMsg{
		mode:   fetchReplace,
		page:   1,
		limit:  2,
		events: []model.Event{ev(idA, "a"), ev(idB, "b")},
		meta:   &model.PageMeta{Page: 1, Pages: 2, Total: 4, Limit: 2},
	})

	if s.isLoading {
		t.Fatalf("isLoading should clear after applyPage")
	}
	if !s.canLoadMore() {
		t.Fatalf("expected canLoadMore with page 1/2")
	}

	s.beginFetch(fetchAppend)
	if !s.isLoadingMore {
		t.Fatalf("append fetch should set isLoadingMore")
	}
	s.applyPage(eventsPageMsg{
		mode:   fetchAppend,
		page:   2,
		limit:  2,
		events: []model.Event{ev(idC, "c"), ev(idD, "d")},
		meta:   &model.PageMeta{Page: 2, Pages: 2, Total: 4, Limit: 2},
	})

	got := make([]string, 0, 4)
	for _, e := range s.events {
		got = append(got, e.Title)
	}
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v want %v", i, got, want)
		}
	}
	if s.canLoadMore() {
		t.Fatalf("page 2/2 should not load more")
	}
}

func TestApplyPage_MetaFallbackToRequestValues(t *testing.T) {
	s := newEventsState(5)
	s.pages = 3
	s.beginFetch(fetchReplace)
	s.applyPage(eventsPageMsg{
		mode:   fetchReplace,
		page:   2,
		limit:  5,
		events: []model.Event{ev(idA, "a")},
	})
	if s.page != 2 {
		t.Fatalf("page = %d, want request value 2", s.page)
	}
	if s.limit != 5 {
		t.Fatalf("limit = %d, want request value 5", s.limit)
	}
}

func TestApplyPage_ErrorKeepsExistingRows(t *testing.T) {
	s := newEventsState(2)
	s.applyPage(eventsPageMsg{mode: fetchReplace, page: 1, events: []model.Event{ev(idA, "a")}})

	s.beginFetch(fetchAppend)
	s.applyPage(eventsPageMsg{mode: fetchAppend, page: 2, err: errors.New("no connection to server")})

	if len(s.events) != 1 || s.events[0].Title != "a" {
		t.Fatalf("failed append should not disturb loaded rows: %+v", s.events)
	}
	if s.errMsg == "" {
		t.Fatalf("expected errMsg after failed fetch")
	}

	// A later fetch clears the stale error.
	s.beginFetch(fetchReplace)
	if s.errMsg != "" {
		t.Fatalf("beginFetch should clear errMsg")
	}
}

func TestToggleFavorite_FlipsAndRollsBack(t *testing.T) {
	s := newEventsState(2)

	adding := s.toggleFavorite(idA)
	if !adding || !s.isFavorite(idA) {
		t.Fatalf("first toggle should add")
	}

	// Second toggle removes; repeated toggles land in a consistent state.
	adding = s.toggleFavorite(idA)
	if adding || s.isFavorite(idA) {
		t.Fatalf("second toggle should remove")
	}

	// Server rejected the removal: rollback restores membership.
	s.rollbackFavorite(idA, false)
	if !s.isFavorite(idA) {
		t.Fatalf("rollback of removal should restore favorite")
	}

	// Server rejected an addition: rollback clears it.
	s.toggleFavorite(idB)
	s.rollbackFavorite(idB, true)
	if s.isFavorite(idB) {
		t.Fatalf("rollback of addition should clear favorite")
	}
}

func TestVisible_DropsMalformedIDs(t *testing.T) {
	s := newEventsState(4)
	s.events = []model.Event{ev(idA, "ok"), ev("42", "bad"), ev("", "empty"), ev(idB, "ok2")}
	got := s.visible()
	if len(got) != 2 || got[0].Title != "ok" || got[1].Title != "ok2" {
		t.Fatalf("visible() = %+v, want the two well-formed rows", got)
	}
}

func TestApplyFilters_SnapshotsDraft(t *testing.T) {
	s := newEventsState(2)
	s.draft.Query = "jazz"
	s.draft.From = "2026-09-01"
	s.draft.Desc = true

	snap := s.applyFilters()
	if snap != s.applied {
		t.Fatalf("applyFilters should return the applied snapshot")
	}

	// Edits after the snapshot do not affect the request built from it.
	s.draft.Query = "rock"
	q := s.query(1)
	if q.Query != "jazz" || q.From != "2026-09-01" || q.Sort != "date:desc" {
		t.Fatalf("query built from stale draft: %+v", q)
	}

	s.resetDraft()
	if s.draft.Query != "jazz" {
		t.Fatalf("resetDraft should restore applied values, got %q", s.draft.Query)
	}
}

func TestUpdateAndRemoveEvent(t *testing.T) {
	s := newEventsState(2)
	s.events = []model.Event{ev(idA, "a"), ev(idB, "b")}

	s.updateEvent(ev(idB, "b2"))
	if s.events[1].Title != "b2" {
		t.Fatalf("updateEvent did not replace row: %+v", s.events)
	}

	s.removeEvent(idA)
	if len(s.events) != 1 || s.events[0].ID != idB {
		t.Fatalf("removeEvent left %+v", s.events)
	}
}
