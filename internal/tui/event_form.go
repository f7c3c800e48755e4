package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventhive-cli/internal/api"
	"eventhive-cli/internal/model"
	"eventhive-cli/internal/validate"
)

const (
	formFocusTitle = iota
	formFocusDate
	formFocusLocation
	formFocusCategory
	formFocusImage
	formFocusDesc
	formFieldCount
)

// eventForm drives the create/edit modal view. The same form serves both;
// editingID is empty for create.
type eventForm struct {
	editingID string

	title    textinput.Model
	date     textinput.Model
	location textinput.Model
	category textinput.Model
	image    textinput.Model
	desc     textarea.Model

	public bool
	focus  int
	busy   bool
	errMsg string
}

func newEventForm() eventForm {
	f := eventForm{public: true}

	f.title = textinput.New()
	f.title.Placeholder = "title"
	f.title.CharLimit = 140
	f.date = textinput.New()
	f.date.Placeholder = "2026-09-12 19:30"
	f.date.CharLimit = 25
	f.location = textinput.New()
	f.location.Placeholder = "location"
	f.location.CharLimit = 140
	f.category = textinput.New()
	f.category.Placeholder = "category"
	f.category.CharLimit = 60
	f.image = textinput.New()
	f.image.Placeholder = "image url (optional)"
	f.image.CharLimit = 300
	f.desc = textarea.New()
	f.desc.Placeholder = "description (markdown)"
	f.desc.CharLimit = 5000
	f.desc.SetHeight(6)

	return f
}

func eventFormFrom(ev model.Event) eventForm {
	f := newEventForm()
	f.editingID = ev.ID
	f.title.SetValue(ev.Title)
	if !ev.Date.IsZero() {
		f.date.SetValue(ev.Date.Local().Format("2006-01-02 15:04"))
	}
	f.location.SetValue(ev.Location)
	f.category.SetValue(ev.Category)
	f.image.SetValue(ev.ImageURL)
	f.desc.SetValue(ev.Description)
	f.public = ev.IsPublic
	return f
}

// params validates the form. Nothing is sent until every field passes.
func (f *eventForm) params() (api.EventParams, error) {
	if err := validate.EventTitle(f.title.Value()); err != nil {
		return api.EventParams{}, err
	}
	date, err := validate.EventDate(f.date.Value())
	if err != nil {
		return api.EventParams{}, err
	}
	if err := validate.ImageURL(f.image.Value()); err != nil {
		return api.EventParams{}, err
	}
	return api.EventParams{
		Title:       strings.TrimSpace(f.title.Value()),
		Description: strings.TrimSpace(f.desc.Value()),
		Date:        date,
		Location:    strings.TrimSpace(f.location.Value()),
		IsPublic:    f.public,
		Category:    strings.TrimSpace(f.category.Value()),
		ImageURL:    strings.TrimSpace(f.image.Value()),
	}, nil
}

func (f *eventForm) focusCmd() tea.Cmd {
	f.focus = formFocusTitle
	return f.applyFocus()
}

func (f *eventForm) applyFocus() tea.Cmd {
	f.title.Blur()
	f.date.Blur()
	f.location.Blur()
	f.category.Blur()
	f.image.Blur()
	f.desc.Blur()
	switch f.focus {
	case formFocusTitle:
		return f.title.Focus()
	case formFocusDate:
		return f.date.Focus()
	case formFocusLocation:
		return f.location.Focus()
	case formFocusCategory:
		return f.category.Focus()
	case formFocusImage:
		return f.image.Focus()
	case formFocusDesc:
		return f.desc.Focus()
	}
	return nil
}

func (f *eventForm) focusNext() tea.Cmd {
	f.focus = (f.focus + 1) % formFieldCount
	return f.applyFocus()
}

func (f *eventForm) focusPrev() tea.Cmd {
	f.focus = (f.focus + formFieldCount - 1) % formFieldCount
	return f.applyFocus()
}

// update routes input to the focused field.
func (f *eventForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case formFocusTitle:
		f.title, cmd = f.title.Update(msg)
	case formFocusDate:
		f.date, cmd = f.date.Update(msg)
	case formFocusLocation:
		f.location, cmd = f.location.Update(msg)
	case formFocusCategory:
		f.category, cmd = f.category.Update(msg)
	case formFocusImage:
		f.image, cmd = f.image.Update(msg)
	case formFocusDesc:
		f.desc, cmd = f.desc.Update(msg)
	}
	return cmd
}

func (f *eventForm) view(width int) string {
	label := func(s string, focused bool) string {
		st := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
		if focused {
			st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		return st.Render(s)
	}

	visibility := "public"
	if !f.public {
		visibility = "private"
	}

	var b strings.Builder
	b.WriteString(label("Title", f.focus == formFocusTitle) + "\n" + f.title.View() + "\n\n")
	b.WriteString(label("Date", f.focus == formFocusDate) + "\n" + f.date.View() + "\n\n")
	b.WriteString(label("Location", f.focus == formFocusLocation) + "\n" + f.location.View() + "\n\n")
	b.WriteString(label("Category", f.focus == formFocusCategory) + "\n" + f.category.View() + "\n\n")
	b.WriteString(label("Image URL", f.focus == formFocusImage) + "\n" + f.image.View() + "\n\n")
	b.WriteString(label("Description", f.focus == formFocusDesc) + "\n" + f.desc.View() + "\n\n")
	b.WriteString(label("Visibility", false) + ": " + visibility + "  (ctrl+v toggles)\n")

	if f.errMsg != "" {
		b.WriteString("\n" + styleError().Render(f.errMsg) + "\n")
	}

	title := "New event"
	if f.editingID != "" {
		title = "Edit event"
	}
	help := styleMuted().Render("tab: next field   ctrl+s: save   esc: cancel")
	return renderModalBox(width, title, b.String()+"\n"+help)
}
