package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"eventhive-cli/internal/api"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listH := m.height - chromeHeight
		if listH < 3 {
			listH = 3
		}
		m.eventsList.SetSize(m.width, listH)
		m.favList.SetSize(m.width, listH)
		m.commentArea.SetWidth(min(m.width-4, 80))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sessionMsg:
		return m.handleSession(msg)

	case loginResultMsg:
		if msg.err != nil {
			m.authBusy = false
			m.authErr = humanErr(msg.err)
			return m, nil
		}
		// Token first, then verification; the sessionMsg that follows
		// completes the login flow.
		return m, storeTokenCmd(m.store, msg.token)

	case eventsPageMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Int("page", msg.page).Msg("events fetch failed")
		}
		msg.err = humanizeErr(msg.err)
		m.list.applyPage(msg)
		m.syncEventsList()
		return m, nil

	case favoritesMsg:
		// Favorite markers are decoration; a failed fetch just leaves the
		// list unmarked.
		if msg.err == nil {
			m.list.setFavorites(msg.ids)
			m.syncEventsList()
		}
		return m, nil

	case favToggleDoneMsg:
		return m.handleFavToggleDone(msg)

	case favoriteEventsMsg:
		m.favLoading = false
		if msg.err != nil {
			m.favErr = humanErr(msg.err)
			return m, nil
		}
		m.favErr = ""
		m.favEvents = msg.events
		m.syncFavList()
		return m, nil

	case detailMsg:
		if msg.err == nil && msg.event.ID != m.detail.eventID {
			return m, nil
		}
		msg.err = humanizeErr(msg.err)
		m.detail.applyDetail(msg)
		if msg.err == nil {
			m.list.updateEvent(msg.event)
			m.syncEventsList()
		}
		return m, nil

	case joinDoneMsg:
		msg.err = humanizeErr(msg.err)
		m.detail.applyJoin(msg)
		if msg.err == nil {
			m.list.updateEvent(msg.event)
			m.syncEventsList()
		}
		return m, nil

	case commentsMsg:
		msg.err = humanizeErr(msg.err)
		m.detail.applyComments(msg)
		return m, nil

	case commentAddedMsg:
		msg.err = humanizeErr(msg.err)
		m.detail.applyCommentAdded(msg)
		if msg.err == nil {
			m.composing = false
			m.replyToID = ""
			m.commentArea.Reset()
		}
		return m, nil

	case likeDoneMsg:
		msg.err = humanizeErr(msg.err)
		m.detail.applyLike(msg)
		return m, nil

	case commentDeletedMsg:
		msg.err = humanizeErr(msg.err)
		m.detail.applyCommentDeleted(msg)
		return m, nil

	case eventDeletedMsg:
		m.detail.isDeleting = false
		if msg.err != nil {
			m.detail.deleteErr = humanErr(msg.err)
			return m, nil
		}
		m.list.removeEvent(msg.id)
		m.syncEventsList()
		m.view = m.returnView
		return m, m.flash("event deleted")

	case eventSavedMsg:
		return m.handleEventSaved(msg)

	case shareCopiedMsg:
		if msg.err != nil {
			// No clipboard helper available; surface the link itself.
			return m, m.flash(msg.url)
		}
		return m, m.flash("link copied")

	case profileMsg:
		m.profileLoading = false
		if msg.err != nil {
			m.profileErr = humanErr(msg.err)
			return m, nil
		}
		m.profileErr = ""
		m.profile = msg.user
		return m, nil

	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.flashText = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleSession(msg sessionMsg) (tea.Model, tea.Cmd) {
	m.sess = msg.sess
	var cmds []tea.Cmd
	if msg.sub {
		cmds = append(cmds, listenSessionCmd(m.sessCh))
	}
	if m.sess.IsLoading {
		return m, tea.Batch(cmds...)
	}

	if m.sess.IsLoggedIn {
		m.authBusy = false
		m.authErr = ""
		cmds = append(cmds, fetchFavoritesCmd(m.client))
		if m.havePending {
			target := m.pendingView
			m.havePending = false
			cmds = append(cmds, m.enterView(target))
		} else if viewRequiresAnon(m.view) {
			cmds = append(cmds, m.enterView(viewEvents))
		}
	} else {
		if m.authBusy {
			// The token was stored but verification failed.
			m.authBusy = false
			if m.authErr == "" {
				m.authErr = "could not verify session"
			}
		}
		m.list.setFavorites(nil)
		m.list.scopeMine = false
		m.list.scopeAttending = false
		m.syncEventsList()
		if viewRequiresAuth(m.view) {
			cmds = append(cmds, m.enterView(viewLogin))
		}
	}
	m.syncEventsList()
	return m, tea.Batch(cmds...)
}

func (m appModel) handleFavToggleDone(msg favToggleDoneMsg) (tea.Model, tea.Cmd) {
	m.detail.isTogglingFav = false
	if msg.err == nil {
		if m.view == viewFavorites && !msg.adding {
			for i := range m.favEvents {
				if m.favEvents[i].ID == msg.id {
					m.favEvents = append(m.favEvents[:i], m.favEvents[i+1:]...)
					break
				}
			}
			m.syncFavList()
		}
		return m, nil
	}

	m.log.Warn().Err(msg.err).Str("event", msg.id).Bool("adding", msg.adding).Msg("favorite toggle rolled back")
	m.list.rollbackFavorite(msg.id, msg.adding)
	m.syncEventsList()
	if m.view == viewFavorites {
		// The optimistic removal may already be rendered; reload.
		m.favLoading = true
		return m, fetchFavoriteEventsCmd(m.client)
	}
	if api.IsUnauthorized(msg.err) {
		return m, m.flash("login required, press L to log in")
	}
	return m, m.flash(humanErr(msg.err))
}

func (m appModel) handleEventSaved(msg eventSavedMsg) (tea.Model, tea.Cmd) {
	m.form.busy = false
	if msg.err != nil {
		m.form.errMsg = humanErr(msg.err)
		return m, nil
	}
	m.form.errMsg = ""
	if msg.editing {
		m.list.updateEvent(msg.event)
		m.syncEventsList()
		if m.detail.eventID == msg.event.ID {
			m.detail.event = msg.event
		}
		m.view = m.returnView
		return m, m.flash("event saved")
	}
	m.view = viewEvents
	return m, tea.Batch(m.flash("event created"), m.refreshEvents())
}
