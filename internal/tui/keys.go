package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"eventhive-cli/internal/validate"
)

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.modal != modalNone {
		return m.handleModalKey(msg)
	}
	switch m.view {
	case viewEvents:
		return m.handleEventsKey(msg)
	case viewDetail:
		return m.handleDetailKey(msg)
	case viewFavorites:
		return m.handleFavoritesKey(msg)
	case viewLogin, viewSignup:
		return m.handleAuthKey(msg)
	case viewProfile:
		return m.handleProfileKey(msg)
	case viewEventForm:
		return m.handleFormKey(msg)
	}
	return m, nil
}

func (m appModel) handleEventsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterEditing {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		if ev, ok := m.selectedEvent(); ok {
			return m, m.openDetail(ev)
		}
		return m, nil
	case "/":
		m.filterEditing = true
		m.filterFocus = filterFocusSearch
		m.syncFilterFocus()
		return m, nil
	case "o":
		m.list.draft.Desc = !m.list.applied.Desc
		m.list.applyFilters()
		return m, m.refreshEvents()
	case "r":
		return m, m.refreshEvents()
	case "m":
		if !m.list.canLoadMore() {
			return m, nil
		}
		next := m.list.page + 1
		m.list.beginFetch(fetchAppend)
		return m, fetchEventsCmd(m.client, fetchAppend, m.list.query(next))
	case "f":
		return m.toggleSelectedFavorite()
	case "y":
		if ev, ok := m.selectedEvent(); ok {
			return m, copyShareCmd(m.shareURL(ev.ID))
		}
		return m, nil
	case "n":
		if !m.sess.IsLoggedIn {
			return m, m.flash("login required, press L to log in")
		}
		m.form = newEventForm()
		m.returnView = viewEvents
		return m, m.gotoView(viewEventForm)
	case "e":
		ev, ok := m.selectedEvent()
		if !ok {
			return m, nil
		}
		if ev.CreatedBy.ID != m.userID() || m.userID() == "" {
			return m, m.flash("only the creator can edit this event")
		}
		m.form = eventFormFrom(ev)
		m.returnView = viewEvents
		return m, m.gotoView(viewEventForm)
	case "M":
		if !m.sess.IsLoggedIn {
			return m, m.flash("login required, press L to log in")
		}
		m.list.scopeMine = !m.list.scopeMine
		m.list.scopeAttending = false
		return m, m.refreshEvents()
	case "A":
		if !m.sess.IsLoggedIn {
			return m, m.flash("login required, press L to log in")
		}
		m.list.scopeAttending = !m.list.scopeAttending
		m.list.scopeMine = false
		return m, m.refreshEvents()
	case "b":
		return m, m.gotoView(viewFavorites)
	case "p":
		return m, m.gotoView(viewProfile)
	case "L":
		if !m.sess.IsLoggedIn {
			return m, m.gotoView(viewLogin)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.eventsList, cmd = m.eventsList.Update(msg)
	return m, cmd
}

func (m appModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterEditing = false
		m.list.resetDraft()
		m.restoreFilterInputs()
		return m, nil
	case "tab":
		m.filterFocus = (m.filterFocus + 1) % 3
		m.syncFilterFocus()
		return m, nil
	case "shift+tab":
		m.filterFocus = (m.filterFocus + 2) % 3
		m.syncFilterFocus()
		return m, nil
	case "enter":
		from := strings.TrimSpace(m.fromInput.Value())
		to := strings.TrimSpace(m.toInput.Value())
		if err := validate.DateBound(from); err != nil {
			return m, m.flash("from: " + err.Error())
		}
		if err := validate.DateBound(to); err != nil {
			return m, m.flash("to: " + err.Error())
		}
		m.list.draft.Query = strings.TrimSpace(m.searchInput.Value())
		m.list.draft.From = from
		m.list.draft.To = to
		m.list.applyFilters()
		m.filterEditing = false
		return m, m.refreshEvents()
	}

	var cmd tea.Cmd
	switch m.filterFocus {
	case filterFocusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case filterFocusFrom:
		m.fromInput, cmd = m.fromInput.Update(msg)
	case filterFocusTo:
		m.toInput, cmd = m.toInput.Update(msg)
	}
	return m, cmd
}

func (m *appModel) syncFilterFocus() {
	m.searchInput.Blur()
	m.fromInput.Blur()
	m.toInput.Blur()
	switch m.filterFocus {
	case filterFocusSearch:
		m.searchInput.Focus()
	case filterFocusFrom:
		m.fromInput.Focus()
	case filterFocusTo:
		m.toInput.Focus()
	}
}

func (m *appModel) restoreFilterInputs() {
	m.searchInput.SetValue(m.list.applied.Query)
	m.fromInput.SetValue(m.list.applied.From)
	m.toInput.SetValue(m.list.applied.To)
}

func (m appModel) toggleSelectedFavorite() (tea.Model, tea.Cmd) {
	if !m.sess.IsLoggedIn {
		return m, m.flash("login required, press L to log in")
	}
	ev, ok := m.selectedEvent()
	if !ok {
		return m, nil
	}
	adding := m.list.toggleFavorite(ev.ID)
	m.syncEventsList()
	if m.view == viewDetail {
		m.detail.isTogglingFav = true
	}
	return m, toggleFavoriteCmd(m.client, ev.ID, adding)
}

func (m appModel) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = viewEvents
		return m, nil
	case "enter":
		if ev, ok := m.selectedEvent(); ok {
			return m, m.openDetail(ev)
		}
		return m, nil
	case "r":
		m.favLoading = true
		m.favErr = ""
		return m, fetchFavoriteEventsCmd(m.client)
	case "f":
		ev, ok := m.selectedEvent()
		if !ok {
			return m, nil
		}
		adding := m.list.toggleFavorite(ev.ID)
		m.syncEventsList()
		if !adding {
			// Optimistic removal from the favorites listing too.
			for i := range m.favEvents {
				if m.favEvents[i].ID == ev.ID {
					m.favEvents = append(m.favEvents[:i], m.favEvents[i+1:]...)
					break
				}
			}
			m.syncFavList()
		}
		return m, toggleFavoriteCmd(m.client, ev.ID, adding)
	case "y":
		if ev, ok := m.selectedEvent(); ok {
			return m, copyShareCmd(m.shareURL(ev.ID))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.favList, cmd = m.favList.Update(msg)
	return m, cmd
}

func (m appModel) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = viewEvents
		return m, nil
	case "x":
		m.store.Logout()
		m.sess = m.store.Current()
		m.view = viewEvents
		m.list.setFavorites(nil)
		m.list.scopeMine = false
		m.list.scopeAttending = false
		m.syncEventsList()
		return m, m.flash("logged out")
	case "r":
		if id := m.userID(); id != "" {
			m.profileLoading = true
			return m, fetchProfileCmd(m.client, id)
		}
		return m, nil
	}
	return m, nil
}
