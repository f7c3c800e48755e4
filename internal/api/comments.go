package api

import (
	"context"
	"net/http"
	"net/url"

	"eventhive-cli/internal/model"
)

// ListComments returns the full comment list for an event, newest last.
func (c *Client) ListComments(ctx context.Context, eventID string) ([]model.Comment, error) {
	var out []model.Comment
	if err := c.do(ctx, http.MethodGet, "/comments/event/"+url.PathEscape(eventID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type CommentParams struct {
	Event         string `json:"event"`
	Text          string `json:"text"`
	ParentComment string `json:"parentComment,omitempty"`
}

func (c *Client) CreateComment(ctx context.Context, p CommentParams) (model.Comment, error) {
	var out model.Comment
	if err := c.do(ctx, http.MethodPost, "/comments", nil, p, &out); err != nil {
		return model.Comment{}, err
	}
	return out, nil
}

// LikeComment returns the authoritative updated comment, including the
// recomputed like list. Callers replace their copy wholesale.
func (c *Client) LikeComment(ctx context.Context, id string) (model.Comment, error) {
	var out model.Comment
	if err := c.do(ctx, http.MethodPost, "/comments/"+url.PathEscape(id)+"/like", nil, nil, &out); err != nil {
		return model.Comment{}, err
	}
	return out, nil
}

// UnlikeComment is the inverse of LikeComment, same contract.
func (c *Client) UnlikeComment(ctx context.Context, id string) (model.Comment, error) {
	var out model.Comment
	if err := c.do(ctx, http.MethodDelete, "/comments/"+url.PathEscape(id)+"/like", nil, nil, &out); err != nil {
		return model.Comment{}, err
	}
	return out, nil
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+url.PathEscape(id), nil, nil, nil)
}
