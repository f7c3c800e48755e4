package cli

import (
	"errors"
	"strings"

	"eventhive-cli/internal/api"
	"eventhive-cli/internal/model"
	"eventhive-cli/internal/validate"

	"github.com/spf13/cobra"
)

func newCommentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Comment commands",
	}
	cmd.AddCommand(newCommentsListCmd(app))
	cmd.AddCommand(newCommentsAddCmd(app))
	cmd.AddCommand(newCommentsLikeCmd(app, true))
	cmd.AddCommand(newCommentsLikeCmd(app, false))
	cmd.AddCommand(newCommentsDeleteCmd(app))
	return cmd
}

func newCommentsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <event-id>",
		Short: "List comments for an event",
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
			comments, err := client.ListComments(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			if comments == nil {
				comments = []model.Comment{}
			}
			return writeOut(cmd, app, map[string]any{
				"data": comments,
				"meta": map[string]int{"total": len(comments)},
			})
		},
	}
}

func newCommentsAddCmd(app *App) *cobra.Command {
	var text, parent string

	cmd := &cobra.Command{
		Use:   "add <event-id>",
		Short: "Add a comment (or reply) to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !model.ValidID(id) {
				return writeErr(cmd, errInvalidID(id))
			}
			if err := validate.CommentText(text); err != nil {
				return writeErr(cmd, err)
			}
			parent = strings.TrimSpace(parent)
			if parent != "" && !model.ValidID(parent) {
				return writeErr(cmd, errInvalidID(parent))
			}

			client, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := store.Token(); !ok {
				return writeErr(cmd, errNotLoggedIn())
			}

			c, err := client.CreateComment(cmd.Context(), api.CommentParams{
				Event: id, Text: strings.TrimSpace(text), ParentComment: parent,
			})
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			return writeOut(cmd, app, map[string]any{"data": c})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Comment text")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent comment id (reply)")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newCommentsLikeCmd(app *App, like bool) *cobra.Command {
	use, short := "like <comment-id>", "Like a comment"
	if !like {
		use, short = "unlike <comment-id>", "Remove a like from a comment"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
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

			var c model.Comment
			if like {
				c, err = client.LikeComment(cmd.Context(), id)
			} else {
				c, err = client.UnlikeComment(cmd.Context(), id)
			}
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			return writeOut(cmd, app, map[string]any{"data": c})
		},
	}
}

func newCommentsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete a comment you wrote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !model.ValidID(id) {
				return writeErr(cmd, errInvalidID(id))
			}
			if !yes {
				return writeErr(cmd, errors.New("refusing to delete without --yes"))
			}
			client, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := store.Token(); !ok {
				return writeErr(cmd, errNotLoggedIn())
			}
			if err := client.DeleteComment(cmd.Context(), id); err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": id}})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}
