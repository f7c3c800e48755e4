package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rows taken by header + filter bar + footer around the list body.
const chromeHeight = 7

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	crumbStyle  = lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	flashStyle  = lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Padding(0, 1)
)

func (m appModel) View() string {
	if m.width <= 0 {
		return ""
	}
	if m.modal != modalNone {
		return m.viewModal()
	}

	var body string
	switch m.view {
	case viewEvents:
		body = m.viewEvents()
	case viewDetail:
		body = m.viewDetail()
	case viewFavorites:
		body = m.viewFavorites()
	case viewLogin, viewSignup:
		body = m.viewAuth()
	case viewProfile:
		body = m.viewProfile()
	case viewEventForm:
		body = m.form.view(m.width)
	}

	return m.header() + "\n" + body + "\n" + m.footer()
}

func (m appModel) header() string {
	crumb := "events"
	switch m.view {
	case viewDetail:
		crumb = "events / " + strings.TrimSpace(m.detail.event.Title)
	case viewFavorites:
		crumb = "favorites"
	case viewLogin:
		crumb = "log in"
	case viewSignup:
		crumb = "sign up"
	case viewProfile:
		crumb = "profile"
	case viewEventForm:
		if m.form.editingID != "" {
			crumb = "edit event"
		} else {
			crumb = "new event"
		}
	}

	who := "anonymous"
	switch {
	case m.sess.IsLoading:
		who = m.spin.View() + " verifying"
	case m.sess.IsLoggedIn && m.sess.User != nil:
		who = m.sess.User.Name
	}

	left := headerStyle.Render("EventHive") + "  " + crumbStyle.Render(crumb)
	right := crumbStyle.Render(who)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return fitLine(left+strings.Repeat(" ", gap)+right, m.width)
}

func (m appModel) footer() string {
	if m.flashText != "" {
		return fitLine(flashStyle.Render(m.flashText), m.width)
	}

	var help string
	switch m.view {
	case viewEvents:
		help = "enter: open  /: filter  o: sort  m: more  f: fav  y: share  n: new  b: favs  p: profile  q: quit"
		if !m.sess.IsLoggedIn {
			help = "enter: open  /: filter  o: sort  m: more  y: share  L: log in  q: quit"
		}
	case viewDetail:
		help = "a: attend  f: fav  c: comment  R: reply  l: like  d/D: delete  y: share  esc: back"
		if m.composing {
			help = "ctrl+s: post  esc: cancel"
		}
	case viewFavorites:
		help = "enter: open  f: unfavorite  y: share  r: reload  esc: back"
	case viewLogin, viewSignup:
		help = "tab: next  enter: submit  ctrl+t: switch login/signup  esc: back"
	case viewProfile:
		help = "x: log out  r: reload  esc: back"
	case viewEventForm:
		help = "tab: next field  ctrl+v: visibility  ctrl+s: save  esc: cancel"
	}
	return fitLine(styleMuted().Render(help), m.width)
}

func (m appModel) viewEvents() string {
	bar := m.filterBar()

	if m.list.isLoading {
		return bar + "\n" + m.spin.View() + " loading events..."
	}
	if m.list.errMsg != "" {
		return bar + "\n" + styleError().Render(m.list.errMsg) + "\n" + styleMuted().Render("r: retry")
	}
	if len(m.eventsList.Items()) == 0 {
		return bar + "\n" + styleMuted().Render("no events match")
	}

	status := m.pageStatus()
	return bar + "\n" + m.eventsList.View() + "\n" + status
}

func (m appModel) filterBar() string {
	scope := ""
	if m.list.scopeMine {
		scope = "  [mine]"
	}
	if m.list.scopeAttending {
		scope = "  [attending]"
	}
	order := "date ↑"
	if m.list.applied.Desc {
		order = "date ↓"
	}

	if m.filterEditing {
		return m.searchInput.View() + "  " + m.fromInput.View() + "  " + m.toInput.View() +
			"\n" + styleMuted().Render("tab: next  enter: apply  esc: cancel")
	}

	parts := []string{order + scope}
	if q := m.list.applied.Query; q != "" {
		parts = append(parts, "q="+q)
	}
	if f := m.list.applied.From; f != "" {
		parts = append(parts, "from "+f)
	}
	if t := m.list.applied.To; t != "" {
		parts = append(parts, "to "+t)
	}
	return crumbStyle.Render(strings.Join(parts, "  ")) + "\n"
}

func (m appModel) pageStatus() string {
	s := "page " + strconv.Itoa(m.list.page) + "/" + strconv.Itoa(m.list.pages)
	if m.list.total > 0 {
		s += "  " + strconv.Itoa(m.list.total) + " events"
	}
	if m.list.isLoadingMore {
		s += "  " + m.spin.View() + " loading more"
	} else if m.list.canLoadMore() {
		s += "  m: load more"
	}
	return styleMuted().Render(s)
}

func (m appModel) viewFavorites() string {
	if m.favLoading {
		return m.spin.View() + " loading favorites..."
	}
	if m.favErr != "" {
		return styleError().Render(m.favErr) + "\n" + styleMuted().Render("r: retry")
	}
	if len(m.favList.Items()) == 0 {
		return styleMuted().Render("no favorites yet, press f on an event to add one")
	}
	return m.favList.View()
}

func (m appModel) viewProfile() string {
	if m.profileLoading {
		return m.spin.View() + " loading profile..."
	}
	if m.profileErr != "" {
		return styleError().Render(m.profileErr)
	}
	u := m.profile
	if u.ID == "" && m.sess.User != nil {
		u = *m.sess.User
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(u.Name) + "\n\n")
	b.WriteString("email: " + u.Email + "\n")
	b.WriteString("id:    " + u.ID + "\n")
	if n := len(m.list.favorites); n > 0 {
		b.WriteString("\n" + crumbStyle.Render(strconv.Itoa(n)+" favorited events") + "\n")
	}
	return b.String()
}

func (m appModel) viewAuth() string {
	signup := m.view == viewSignup
	title := "Log in"
	if signup {
		title = "Sign up"
	}

	var b strings.Builder
	if signup {
		b.WriteString("name\n" + m.nameInput.View() + "\n\n")
	}
	b.WriteString("email\n" + m.emailIn.View() + "\n\n")
	b.WriteString("password\n" + m.passIn.View() + "\n")

	if m.authBusy {
		b.WriteString("\n" + m.spin.View() + " signing in...\n")
	}
	if m.authErr != "" {
		b.WriteString("\n" + styleError().Render(m.authErr) + "\n")
	}

	return renderModalBox(m.width, title, b.String())
}

func (m appModel) viewModal() string {
	switch m.modal {
	case modalConfirmDeleteEvent:
		title := strings.TrimSpace(m.detail.event.Title)
		return renderConfirmModal(m.width, "Delete event",
			"Delete \""+title+"\"? This cannot be undone.",
			"Delete", "Cancel", m.confirmFocus)
	case modalConfirmDeleteComment:
		return renderConfirmModal(m.width, "Delete comment",
			"Delete this comment? This cannot be undone.",
			"Delete", "Cancel", m.confirmFocus)
	}
	return ""
}

