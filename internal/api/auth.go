package api

import (
	"context"
	"net/http"

	"eventhive-cli/internal/model"
)

type SignupParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup registers a new account and returns a bearer token.
func (c *Client) Signup(ctx context.Context, p SignupParams) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, p, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, p LoginParams) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, p, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Verify returns the profile behind the stored bearer token.
func (c *Client) Verify(ctx context.Context) (model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}
