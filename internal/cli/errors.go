package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"eventhive-cli/internal/api"

	"github.com/spf13/cobra"
)

type notLoggedInError struct{}

func (notLoggedInError) Error() string {
	return "not logged in; run `eventhive login --email ... --password ...`"
}

func errNotLoggedIn() error { return notLoggedInError{} }

type invalidIDError struct {
	id string
}

func (e invalidIDError) Error() string {
	return fmt.Sprintf("invalid event id (want 24 hex characters): %s", e.id)
}

func errInvalidID(id string) error { return invalidIDError{id: id} }

// friendlyErr rewrites transport/API failures into the user-facing taxonomy:
// network, 401, 403, 404, everything else as-is. Nothing here is fatal to
// the process; cobra prints the message and exits non-zero.
func friendlyErr(server string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case api.IsUnauthorized(err):
		return errors.New("session expired or missing; run `eventhive login`")
	case api.IsForbidden(err):
		return errors.New("permission denied")
	case api.IsNotFound(err):
		return errors.New("not found")
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("no connection to %s", server)
	}
	return err
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
