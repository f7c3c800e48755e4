package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"eventhive-cli/internal/validate"
)

func (m appModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	signup := m.view == viewSignup

	switch msg.String() {
	case "esc":
		m.view = viewEvents
		m.havePending = false
		return m, nil
	case "ctrl+t":
		if signup {
			return m, m.enterView(viewLogin)
		}
		return m, m.enterView(viewSignup)
	case "tab", "down":
		m.authFocus = nextAuthFocus(m.authFocus, signup, +1)
		m.syncAuthFocus()
		return m, nil
	case "shift+tab", "up":
		m.authFocus = nextAuthFocus(m.authFocus, signup, -1)
		m.syncAuthFocus()
		return m, nil
	case "enter":
		return m.submitAuth(signup)
	}

	var cmd tea.Cmd
	switch m.authFocus {
	case authFocusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case authFocusEmail:
		m.emailIn, cmd = m.emailIn.Update(msg)
	case authFocusPassword:
		m.passIn, cmd = m.passIn.Update(msg)
	}
	return m, cmd
}

func nextAuthFocus(cur int, signup bool, dir int) int {
	fields := []int{authFocusEmail, authFocusPassword}
	if signup {
		fields = []int{authFocusName, authFocusEmail, authFocusPassword}
	}
	idx := 0
	for i, f := range fields {
		if f == cur {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(fields)) % len(fields)
	return fields[idx]
}

// submitAuth validates locally before any request goes out, then runs the
// login or signup call. The resulting token is stored and verified before
// the session flips to logged-in.
func (m appModel) submitAuth(signup bool) (tea.Model, tea.Cmd) {
	if m.authBusy {
		return m, nil
	}
	name := m.nameInput.Value()
	email := m.emailIn.Value()
	password := m.passIn.Value()

	if signup {
		if err := validate.Name(name); err != nil {
			m.authErr = err.Error()
			return m, nil
		}
	}
	if err := validate.Email(email); err != nil {
		m.authErr = err.Error()
		return m, nil
	}
	if err := validate.Password(password); err != nil {
		m.authErr = err.Error()
		return m, nil
	}

	m.authBusy = true
	m.authErr = ""
	if signup {
		return m, signupCmd(m.client, name, email, password)
	}
	return m, loginCmd(m.client, email, password)
}

func (m appModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = m.returnView
		return m, nil
	case "tab":
		return m, m.form.focusNext()
	case "shift+tab":
		return m, m.form.focusPrev()
	case "ctrl+v":
		m.form.public = !m.form.public
		return m, nil
	case "ctrl+s":
		if m.form.busy {
			return m, nil
		}
		params, err := m.form.params()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form.busy = true
		m.form.errMsg = ""
		return m, saveEventCmd(m.client, m.form.editingID, params)
	}

	cmd := m.form.update(msg)
	return m, cmd
}
