package cli

import (
	"eventhive-cli/internal/api"
	"eventhive-cli/internal/validate"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Email(email); err != nil {
				return writeErr(cmd, err)
			}
			if err := validate.Password(password); err != nil {
				return writeErr(cmd, err)
			}

			client, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}

			token, err := client.Login(cmd.Context(), api.LoginParams{Email: email, Password: password})
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			if err := store.StoreToken(token); err != nil {
				return writeErr(cmd, err)
			}

			// Re-verify so the persisted token and the reported profile agree.
			sess := store.Authenticate(cmd.Context())
			if !sess.IsLoggedIn {
				return writeErr(cmd, errNotLoggedIn())
			}
			return writeOut(cmd, app, map[string]any{"data": sess.User})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newSignupCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Name(name); err != nil {
				return writeErr(cmd, err)
			}
			if err := validate.Email(email); err != nil {
				return writeErr(cmd, err)
			}
			if err := validate.Password(password); err != nil {
				return writeErr(cmd, err)
			}

			client, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}

			token, err := client.Signup(cmd.Context(), api.SignupParams{Name: name, Email: email, Password: password})
			if err != nil {
				return writeErr(cmd, friendlyErr(client.BaseURL(), err))
			}
			if err := store.StoreToken(token); err != nil {
				return writeErr(cmd, err)
			}

			sess := store.Authenticate(cmd.Context())
			if !sess.IsLoggedIn {
				return writeErr(cmd, errNotLoggedIn())
			}
			return writeOut(cmd, app, map[string]any{"data": sess.User})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			store.Logout()
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"loggedOut": true}})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile behind the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, _, err := app.wire()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := store.Token(); !ok {
				return writeErr(cmd, errNotLoggedIn())
			}
			sess := store.Authenticate(cmd.Context())
			if !sess.IsLoggedIn {
				// Authenticate already cleared the bad token.
				return writeErr(cmd, friendlyErr(client.BaseURL(), errNotLoggedIn()))
			}
			return writeOut(cmd, app, map[string]any{"data": sess.User})
		},
	}
}
