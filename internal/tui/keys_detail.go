package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"eventhive-cli/internal/validate"
)

func (m appModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.composing {
		return m.handleComposerKey(msg)
	}

	rows := buildCommentThreadRows(m.detail.comments)

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = m.returnView
		return m, nil
	case "r":
		m.detail.isLoading = true
		m.detail.errMsg = ""
		m.detail.commentsLoading = true
		m.detail.commentsErr = ""
		return m, tea.Batch(
			fetchDetailCmd(m.client, m.detail.eventID),
			fetchCommentsCmd(m.client, m.detail.eventID),
		)
	case "j", "down":
		if m.commentIdx < len(rows)-1 {
			m.commentIdx++
		}
		return m, nil
	case "k", "up":
		if m.commentIdx > 0 {
			m.commentIdx--
		}
		return m, nil
	case "a":
		if !m.sess.IsLoggedIn {
			return m, m.flash("login required, press L to log in")
		}
		if m.detail.isTogglingAttend {
			return m, nil
		}
		m.detail.isTogglingAttend = true
		m.detail.attendErr = ""
		leaving := m.detail.event.Attending(m.userID())
		return m, toggleJoinCmd(m.client, m.detail.eventID, leaving)
	case "f":
		if !m.sess.IsLoggedIn {
			return m, m.flash("login required, press L to log in")
		}
		if m.detail.isTogglingFav {
			return m, nil
		}
		adding := m.list.toggleFavorite(m.detail.eventID)
		m.syncEventsList()
		m.detail.isTogglingFav = true
		m.detail.favErr = ""
		return m, toggleFavoriteCmd(m.client, m.detail.eventID, adding)
	case "y":
		return m, copyShareCmd(m.shareURL(m.detail.eventID))
	case "c":
		if !m.sess.IsLoggedIn {
			return m, m.flash("login required, press L to log in")
		}
		m.composing = true
		m.replyToID = ""
		m.detail.commentErr = ""
		m.commentArea.Reset()
		return m, m.commentArea.Focus()
	case "R":
		if !m.sess.IsLoggedIn {
			return m, m.flash("login required, press L to log in")
		}
		if len(rows) == 0 {
			return m, nil
		}
		m.composing = true
		m.replyToID = rows[m.commentIdx].Comment.ID
		m.detail.commentErr = ""
		m.commentArea.Reset()
		return m, m.commentArea.Focus()
	case "l":
		return m.toggleSelectedLike(rows)
	case "e":
		if !m.detail.ownedBy(m.userID()) {
			return m, m.flash("only the creator can edit this event")
		}
		m.form = eventFormFrom(m.detail.event)
		m.returnView = viewDetail
		return m, m.gotoView(viewEventForm)
	case "d":
		if len(rows) == 0 {
			return m, nil
		}
		c := rows[m.commentIdx].Comment
		if !commentOwnedBy(c, m.userID()) {
			return m, m.flash("only the author can delete this comment")
		}
		m.modal = modalConfirmDeleteComment
		m.modalTarget = c.ID
		m.confirmFocus = confirmFocusCancel
		return m, nil
	case "D":
		if !m.detail.ownedBy(m.userID()) {
			return m, m.flash("only the creator can delete this event")
		}
		m.modal = modalConfirmDeleteEvent
		m.modalTarget = m.detail.eventID
		m.confirmFocus = confirmFocusCancel
		return m, nil
	}
	return m, nil
}

func (m appModel) toggleSelectedLike(rows []commentThreadRow) (tea.Model, tea.Cmd) {
	if !m.sess.IsLoggedIn {
		return m, m.flash("login required, press L to log in")
	}
	if len(rows) == 0 {
		return m, nil
	}
	c := rows[m.commentIdx].Comment
	if m.detail.likeDisabled(c.ID) {
		return m, nil
	}
	// No optimistic update here, the server copy replaces the comment when
	// the call resolves. Only this comment's like control locks.
	m.detail.togglingLikeID = c.ID
	liking := !c.LikedBy(m.userID())
	return m, toggleLikeCmd(m.client, c.ID, liking)
}

func (m appModel) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = false
		m.replyToID = ""
		m.commentArea.Reset()
		return m, nil
	case "ctrl+s":
		if m.detail.isSendingComment {
			return m, nil
		}
		text := m.commentArea.Value()
		if err := validate.CommentText(text); err != nil {
			m.detail.commentErr = err.Error()
			return m, nil
		}
		m.detail.isSendingComment = true
		m.detail.commentErr = ""
		return m, addCommentCmd(m.client, m.detail.eventID, text, m.replyToID)
	}

	var cmd tea.Cmd
	m.commentArea, cmd = m.commentArea.Update(msg)
	return m, cmd
}

func (m appModel) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.modal = modalNone
		return m, nil
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter", "y":
		if msg.String() == "enter" && m.confirmFocus != confirmFocusConfirm {
			m.modal = modalNone
			return m, nil
		}
		kind, target := m.modal, m.modalTarget
		m.modal = modalNone
		switch kind {
		case modalConfirmDeleteEvent:
			m.detail.isDeleting = true
			m.detail.deleteErr = ""
			return m, deleteEventCmd(m.client, target)
		case modalConfirmDeleteComment:
			m.detail.commentErr = ""
			return m, deleteCommentCmd(m.client, target)
		}
		return m, nil
	}
	return m, nil
}
