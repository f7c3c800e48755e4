package api

import (
	"context"
	"net/http"
	"net/url"

	"eventhive-cli/internal/model"
)

func (c *Client) GetUser(ctx context.Context, id string) (model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

// MyFavorites returns the full list of events the session user bookmarked.
func (c *Client) MyFavorites(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := c.do(ctx, http.MethodGet, "/users/me/favorites", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddFavorite(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodPost, "/users/me/favorites/"+url.PathEscape(eventID), nil, nil, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/users/me/favorites/"+url.PathEscape(eventID), nil, nil, nil)
}
