package tui

import (
	"eventhive-cli/internal/api"
	"eventhive-cli/internal/model"
)

// eventFilters is the filter bar state. The draft copy is what the user is
// editing; applied is the snapshot the current result set was fetched with.
// Fetches always use a snapshot so a mid-flight edit cannot leak into the
// request that is already running.
type eventFilters struct {
	Query string
	From  string
	To    string
	Desc  bool
}

func (f eventFilters) sort() string {
	if f.Desc {
		return api.SortDateDesc
	}
	return api.SortDateAsc
}

type eventsState struct {
	draft   eventFilters
	applied eventFilters

	scopeMine      bool
	scopeAttending bool

	events []model.Event
	page   int
	pages  int
	total  int
	limit  int

	isLoading     bool
	isLoadingMore bool
	errMsg        string

	// Favorite ids for the signed-in user. nil means not loaded (anonymous
	// or fetch failed); lookups on nil simply report not-favorited.
	favorites map[string]bool
}

func newEventsState(limit int) eventsState {
	if limit <= 0 {
		limit = 12
	}
	return eventsState{page: 1, pages: 1, limit: limit}
}

// beginFetch flips the loading flag for the given mode and clears any stale
// error. Replace and append never run concurrently; callers check the flags.
func (s *eventsState) beginFetch(mode fetchMode) {
	s.errMsg = ""
	if mode == fetchAppend {
		s.isLoadingMore = true
	} else {
		s.isLoading = true
	}
}

func (s *eventsState) fetching() bool {
	return s.isLoading || s.isLoadingMore
}

// applyPage folds a fetch result into the state. Replace swaps the whole
// result set; append keeps existing rows and adds the new page after them,
// preserving server order within each page. Pagination metadata comes from
// the response when present, otherwise from the request that produced it.
func (s *eventsState) applyPage(msg eventsPageMsg) {
	s.isLoading = false
	s.isLoadingMore = false
	if msg.err != nil {
		s.errMsg = msg.err.Error()
		return
	}

	if msg.mode == fetchAppend {
		s.events = append(s.events, msg.events...)
	} else {
		s.events = msg.events
	}

	if msg.meta != nil {
		s.page = msg.meta.Page
		s.pages = msg.meta.Pages
		s.total = msg.meta.Total
		if msg.meta.Limit > 0 {
			s.limit = msg.meta.Limit
		}
	} else {
		s.page = msg.page
		if msg.limit > 0 {
			s.limit = msg.limit
		}
	}
}

// applyFilters snapshots the draft filters, making them the applied set, and
// returns the snapshot for the replace fetch that must follow.
func (s *eventsState) applyFilters() eventFilters {
	s.applied = s.draft
	return s.applied
}

// resetDraft discards unapplied edits, e.g. when the filter bar is dismissed.
func (s *eventsState) resetDraft() {
	s.draft = s.applied
}

func (s *eventsState) canLoadMore() bool {
	return !s.fetching() && s.page < s.pages
}

// query builds the list request for a page under the applied filters and
// current scope.
func (s *eventsState) query(page int) api.ListEventsQuery {
	return api.ListEventsQuery{
		Page:      page,
		Limit:     s.limit,
		Sort:      s.applied.sort(),
		Query:     s.applied.Query,
		From:      s.applied.From,
		To:        s.applied.To,
		Mine:      s.scopeMine,
		Attending: s.scopeAttending,
	}
}

func (s *eventsState) setFavorites(ids map[string]bool) {
	s.favorites = ids
}

func (s *eventsState) isFavorite(id string) bool {
	return s.favorites[id]
}

// toggleFavorite flips membership immediately and reports the direction the
// server call must take. The UI renders the new state before the request
// resolves; rollbackFavorite undoes it on failure.
func (s *eventsState) toggleFavorite(id string) (adding bool) {
	if s.favorites == nil {
		s.favorites = map[string]bool{}
	}
	if s.favorites[id] {
		delete(s.favorites, id)
		return false
	}
	s.favorites[id] = true
	return true
}

func (s *eventsState) rollbackFavorite(id string, adding bool) {
	if s.favorites == nil {
		s.favorites = map[string]bool{}
	}
	if adding {
		delete(s.favorites, id)
	} else {
		s.favorites[id] = true
	}
}

// updateEvent replaces the row with the same id, if loaded.
func (s *eventsState) updateEvent(ev model.Event) {
	for i := range s.events {
		if s.events[i].ID == ev.ID {
			s.events[i] = ev
			return
		}
	}
}

func (s *eventsState) removeEvent(id string) {
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return
		}
	}
}

// visible filters out rows whose id is not a well-formed object id. Such
// rows cannot be opened, favorited, or shared, so they are dropped rather
// than rendered as dead entries.
func (s *eventsState) visible() []model.Event {
	out := make([]model.Event, 0, len(s.events))
	for _, ev := range s.events {
		if model.ValidID(ev.ID) {
			out = append(out, ev)
		}
	}
	return out
}
