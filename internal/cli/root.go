package cli

import (
	"os"
	"strings"

	"eventhive-cli/internal/api"
	"eventhive-cli/internal/config"
	"eventhive-cli/internal/format"
	"eventhive-cli/internal/logging"
	"eventhive-cli/internal/session"
	"eventhive-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Server     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "eventhive",
		Short:        "EventHive terminal client (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  eventhive

  # Scriptable commands
  eventhive login --email a@b.com --password secret1
  eventhive events list --q picnic --sort asc
  eventhive favorites add 507f1f77bcf86cd799439011
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("EVENTHIVE_SERVER", ""), "API base URL (overrides config)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newSignupCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newCommentsCmd(app))
	cmd.AddCommand(newFavoritesCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// wire builds the client and session store from config + flags.
func (a *App) wire() (*api.Client, *session.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	server := cfg.Server
	if s := strings.TrimSpace(a.Server); s != "" {
		server = strings.TrimRight(s, "/")
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, nil, nil, err
	}
	tokens := session.NewTokenStore(dir)
	client := api.New(server, tokens, logging.New())
	store := session.NewStore(tokens, client)
	return client, store, cfg, nil
}

func runTUI(app *App) error {
	client, store, cfg, err := app.wire()
	if err != nil {
		return err
	}
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Client:   client,
		Session:  store,
		PageSize: cfg.PageSize,
		Theme:    cfg.Theme,
		Log:      logging.NewFile(dir),
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.PrettyJSON)
}
