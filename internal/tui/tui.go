package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"eventhive-cli/internal/api"
	"eventhive-cli/internal/session"
)

// Options wires the interactive UI to the shared client and session state.
type Options struct {
	Client   *api.Client
	Session  *session.Store
	PageSize int
	Theme    string
	Log      zerolog.Logger
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
