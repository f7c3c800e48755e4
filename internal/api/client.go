package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource yields the persisted bearer token, if any. It is read on every
// outgoing request so requests made after a logout never carry a stale token.
type TokenSource interface {
	Token() (string, bool)
}

// Client talks to the EventHive REST backend. The client only shapes
// requests and decodes responses; all state lives server-side.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
	log    zerolog.Logger
}

func New(base string, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		base: strings.TrimRight(strings.TrimSpace(base), "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokens: tokens,
		log:    log,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.base }

// do issues one request. A bearer header is attached only when a token is
// stored; out==nil discards the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	if tok, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Str("request_id", reqID).
			Err(err).Msg("api request failed")
		return err
	}
	defer resp.Body.Close()

	c.log.Debug().Str("method", method).Str("path", path).Str("request_id", reqID).
		Int("status", resp.StatusCode).Dur("took", time.Since(start)).Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	// Body is capped: error payloads are small and a broken server must not
	// make the client buffer unbounded data.
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 32<<10))
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err == nil {
		if strings.TrimSpace(payload.Message) != "" {
			apiErr.Message = strings.TrimSpace(payload.Message)
		} else if strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = strings.TrimSpace(payload.Error)
		}
	}
	return apiErr
}
