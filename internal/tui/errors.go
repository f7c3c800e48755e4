package tui

import (
	"context"
	"errors"
	"net/url"

	"eventhive-cli/internal/api"
)

// humanizeErr rewraps an error with its short display message while keeping
// nil errors nil.
func humanizeErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(humanErr(err))
}

// humanErr turns an API failure into the short message shown inline in the
// TUI. Status classes map to stable phrasings so views can react to the
// text-free classification separately via the api helpers.
func humanErr(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case api.IsUnauthorized(err):
		return "login required"
	case api.IsForbidden(err):
		return "permission denied"
	case api.IsNotFound(err):
		return "not found"
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return "no connection to server"
	}
	return err.Error()
}
