package cli

import (
	"strings"

	"eventhive-cli/internal/model"

	"github.com/spf13/cobra"
)

func newFavoritesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Favorite (bookmark) commands",
	}
	cmd.AddCommand(newFavoritesListCmd(app))
	cmd.AddCommand(newFavoritesAddCmd(app))
	cmd.AddCommand(newFavoritesRemoveCmd(app))
	return cmd
}

func newFavoritesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List my favorite events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := store.Token(); !ok {
				return writeErr(cmd, errNotLoggedIn())
			}
			events, err := client.MyFavorites(cmd.Context())
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			if events == nil {
				events = []model.Event{}
			}
			return writeOut(cmd, app, map[string]any{
				"data": events,
				"meta": map[string]int{"total": len(events)},
			})
		},
	}
}

func newFavoritesAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <event-id>",
		Short: "Bookmark an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateFavorite(cmd, app, args[0], true)
		},
	}
}

func newFavoritesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <event-id>",
		Short: "Remove an event bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateFavorite(cmd, app, args[0], false)
		},
	}
}

func mutateFavorite(cmd *cobra.Command, app *App, rawID string, add bool) error {
	id := strings.TrimSpace(rawID)
	if !model.ValidID(id) {
		return writeErr(cmd, errInvalidID(id))
	}
	client, store, _, err := app.wire()
	if err != nil {
		return writeErr(cmd, err)
	}
	if _, ok := store.Token(); !ok {
		return writeErr(cmd, errNotLoggedIn())
	}

	if add {
		err = client.AddFavorite(cmd.Context(), id)
	} else {
		err = client.RemoveFavorite(cmd.Context(), id)
	}
	if err != nil {
		return writeErr(cmd, friendlyErr(client.BaseURL(), err))
	}
	return writeOut(cmd, app, map[string]any{
		"data": map[string]any{"event": id, "favorite": add},
	})
}
