package cli

import (
	"strings"

	"eventhive-cli/internal/model"

	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User commands",
	}
	cmd.AddCommand(newUsersShowCmd(app))
	return cmd
}

func newUsersShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !model.ValidID(id) {
				return writeErr(cmd, errInvalidID(id))
			}
			client, _, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			u, err := client.GetUser(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			return writeOut(cmd, app, map[string]any{"data": u})
		},
	}
}
