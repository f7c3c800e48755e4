package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"eventhive-cli/internal/api"
	"eventhive-cli/internal/model"
	"eventhive-cli/internal/session"
)

const (
	filterFocusSearch = iota
	filterFocusFrom
	filterFocusTo
)

const (
	authFocusName = iota
	authFocusEmail
	authFocusPassword
)

type appModel struct {
	client *api.Client
	store  *session.Store
	log    zerolog.Logger

	width  int
	height int

	view view
	// View to return to when the detail or form view is dismissed.
	returnView view
	// Auth-only view the user asked for while anonymous; restored after a
	// successful login.
	pendingView view
	havePending bool

	sess   session.Session
	sessCh <-chan session.Session

	spin spinner.Model

	// Events list.
	list          eventsState
	eventsList    list.Model
	filterEditing bool
	filterFocus   int
	searchInput   textinput.Model
	fromInput     textinput.Model
	toInput       textinput.Model

	// Favorites view.
	favList    list.Model
	favEvents  []model.Event
	favLoading bool
	favErr     string

	// Detail view.
	detail      detailState
	commentIdx  int
	composing   bool
	replyToID   string
	commentArea textarea.Model

	// Login/signup form.
	nameInput textinput.Model
	emailIn   textinput.Model
	passIn    textinput.Model
	authFocus int
	authBusy  bool
	authErr   string

	// Event create/edit form.
	form eventForm

	modal        modalKind
	modalTarget  string
	confirmFocus confirmModalFocus

	flashText string
	flashSeq  int

	profile        model.User
	profileLoading bool
	profileErr     string
}

func newAppModel(opts Options) appModel {
	m := appModel{
		client: opts.Client,
		store:  opts.Session,
		log:    opts.Log,
		view:   viewEvents,
		list:   newEventsState(opts.PageSize),
		sess:   opts.Session.Current(),
		sessCh: opts.Session.Subscribe(),
	}

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = lipgloss.NewStyle().Foreground(colorAccent)

	m.eventsList = newList(nil)
	m.favList = newList(nil)

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "search"
	m.searchInput.CharLimit = 120
	m.fromInput = textinput.New()
	m.fromInput.Placeholder = "from YYYY-MM-DD"
	m.fromInput.CharLimit = 10
	m.toInput = textinput.New()
	m.toInput.Placeholder = "to YYYY-MM-DD"
	m.toInput.CharLimit = 10

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "name"
	m.nameInput.CharLimit = 80
	m.emailIn = textinput.New()
	m.emailIn.Placeholder = "email"
	m.emailIn.CharLimit = 120
	m.passIn = textinput.New()
	m.passIn.Placeholder = "password"
	m.passIn.EchoMode = textinput.EchoPassword
	m.passIn.CharLimit = 120

	m.commentArea = textarea.New()
	m.commentArea.Placeholder = "write a comment"
	m.commentArea.CharLimit = 2000
	m.commentArea.SetHeight(4)

	m.form = newEventForm()

	// The first page fetch starts in Init; mark it in-flight now so the
	// first frame renders the loading state.
	m.list.beginFetch(fetchReplace)
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		authenticateCmd(m.store),
		listenSessionCmd(m.sessCh),
		fetchEventsCmd(m.client, fetchReplace, m.list.query(1)),
	)
}

// userID is the verified subject id, empty while anonymous or loading.
func (m *appModel) userID() string {
	if m.sess.User != nil {
		return m.sess.User.ID
	}
	return ""
}

// gotoView switches to target if the guards allow it, otherwise redirects
// and remembers the auth-only target for after login.
func (m *appModel) gotoView(target view) tea.Cmd {
	resolved, settled := resolveView(target, m.sess)
	if !settled {
		// Session still verifying; keep the request pending.
		m.pendingView = target
		m.havePending = true
		return nil
	}
	if resolved != target && viewRequiresAuth(target) {
		m.pendingView = target
		m.havePending = true
	}
	return m.enterView(resolved)
}

// enterView performs per-view setup. Callers have already run the guards.
func (m *appModel) enterView(v view) tea.Cmd {
	m.view = v
	switch v {
	case viewFavorites:
		m.favLoading = true
		m.favErr = ""
		return fetchFavoriteEventsCmd(m.client)
	case viewProfile:
		if id := m.userID(); id != "" {
			m.profileLoading = true
			m.profileErr = ""
			return fetchProfileCmd(m.client, id)
		}
	case viewLogin, viewSignup:
		m.authErr = ""
		m.authBusy = false
		m.authFocus = authFocusEmail
		if v == viewSignup {
			m.authFocus = authFocusName
		}
		m.syncAuthFocus()
	case viewEventForm:
		return m.form.focusCmd()
	}
	return nil
}

func (m *appModel) syncAuthFocus() {
	m.nameInput.Blur()
	m.emailIn.Blur()
	m.passIn.Blur()
	switch m.authFocus {
	case authFocusName:
		m.nameInput.Focus()
	case authFocusEmail:
		m.emailIn.Focus()
	case authFocusPassword:
		m.passIn.Focus()
	}
}

func (m *appModel) flash(text string) tea.Cmd {
	m.flashText = text
	m.flashSeq++
	return flashClearCmd(m.flashSeq)
}

func (m *appModel) shareURL(id string) string {
	base := strings.TrimSuffix(m.client.BaseURL(), "/api")
	return base + "/events/" + id
}

// refreshEvents replaces the current result set from page 1.
func (m *appModel) refreshEvents() tea.Cmd {
	m.list.beginFetch(fetchReplace)
	cmds := []tea.Cmd{fetchEventsCmd(m.client, fetchReplace, m.list.query(1))}
	if m.sess.IsLoggedIn {
		cmds = append(cmds, fetchFavoritesCmd(m.client))
	}
	return tea.Batch(cmds...)
}

func (m *appModel) syncEventsList() {
	m.eventsList.SetItems(eventItems(m.list.visible(), m.list.favorites, m.userID()))
}

func (m *appModel) syncFavList() {
	items := make([]model.Event, 0, len(m.favEvents))
	for _, ev := range m.favEvents {
		if model.ValidID(ev.ID) {
			items = append(items, ev)
		}
	}
	all := map[string]bool{}
	for _, ev := range items {
		all[ev.ID] = true
	}
	m.favList.SetItems(eventItems(items, all, m.userID()))
}

func (m *appModel) selectedEvent() (model.Event, bool) {
	l := &m.eventsList
	if m.view == viewFavorites {
		l = &m.favList
	}
	it, ok := l.SelectedItem().(eventItem)
	if !ok {
		return model.Event{}, false
	}
	return it.event, true
}

func (m *appModel) openDetail(ev model.Event) tea.Cmd {
	if !model.ValidID(ev.ID) {
		return m.flash("malformed event id")
	}
	m.detail = newDetailState(ev.ID)
	m.detail.event = ev
	m.commentIdx = 0
	m.composing = false
	m.replyToID = ""
	m.commentArea.Reset()
	m.returnView = m.view
	m.view = viewDetail
	return tea.Batch(
		fetchDetailCmd(m.client, ev.ID),
		fetchCommentsCmd(m.client, ev.ID),
	)
}
