// Package client talks to a running swatch server over HTTP.
// It backs the CLI subcommands that read and change the favorite color.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dreamware/swatch/internal/favorite"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL    string
	Body   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %s: %d", e.URL, e.Status)
}

// Client is a swatch HTTP client. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	base       string
}

// New creates a client for the server at base (e.g. "http://127.0.0.1:8080").
func New(base string, timeout time.Duration) *Client {
	return &Client{
		base:       strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Health returns nil when the server answers its liveness probe.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health")
	return err
}

// Favorite returns the server's current favorite color state.
func (c *Client) Favorite(ctx context.Context) (favorite.State, error) {
	var st favorite.State
	body, err := c.do(ctx, http.MethodGet, "/api/favorite")
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(body, &st); err != nil {
		return st, fmt.Errorf("decode favorite: %w", err)
	}
	return st, nil
}

// SetFavorite sets the favorite color and returns the rendered HTML reply.
func (c *Client) SetFavorite(ctx context.Context, color string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/color/favorite/"+url.PathEscape(color))
	return string(body), err
}

// ColorBlock returns the rendered HTML block for color.
func (c *Client) ColorBlock(ctx context.Context, color string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/color/"+url.PathEscape(color))
	return string(body), err
}

func (c *Client) do(ctx context.Context, method, path string) ([]byte, error) {
	u := c.base + path
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", u, err)
	}
	if resp.StatusCode >= 300 {
		return body, &StatusError{URL: u, Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
