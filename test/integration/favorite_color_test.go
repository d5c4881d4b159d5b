package integration

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/swatch/internal/client"
	"github.com/dreamware/swatch/internal/logging"
	"github.com/dreamware/swatch/internal/render"
	"github.com/dreamware/swatch/internal/web"
)

// TestSystem is a swatch server running on a real loopback listener.
type TestSystem struct {
	t          *testing.T
	srv        *web.Server
	done       chan error
	addr       string
	httpClient *http.Client
}

// NewTestSystem starts a server and waits until it answers /health.
func NewTestSystem(t *testing.T) *TestSystem {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ts := &TestSystem{
		t:          t,
		srv:        web.NewServer(l.Addr().String(), render.MustNew(""), logging.Discard()),
		done:       make(chan error, 1),
		addr:       "http://" + l.Addr().String(),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	go func() { ts.done <- ts.srv.Serve(l) }()
	require.NoError(t, ts.waitForService(ts.addr+"/health"))
	t.Cleanup(ts.Stop)

	return ts
}

// Stop shuts the server down and waits for Serve to return.
func (ts *TestSystem) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ts.srv.Shutdown(ctx); err != nil {
		ts.t.Errorf("shutdown: %v", err)
	}
	if err := <-ts.done; err != nil {
		ts.t.Errorf("serve: %v", err)
	}
}

// waitForService waits for an HTTP service to become available
func (ts *TestSystem) waitForService(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for %s", url)
		default:
			resp, err := ts.httpClient.Get(url)
			if err == nil && resp.StatusCode == http.StatusOK {
				resp.Body.Close()
				return nil
			}
			if resp != nil {
				resp.Body.Close()
			}
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// request sends method to path and returns status and body.
func (ts *TestSystem) request(method, path string) (int, string) {
	ts.t.Helper()

	req, err := http.NewRequest(method, ts.addr+path, nil)
	require.NoError(ts.t, err)
	resp, err := ts.httpClient.Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(ts.t, err)
	return resp.StatusCode, string(body)
}

func TestIndex(t *testing.T) {
	ts := NewTestSystem(t)

	status, body := ts.request(http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<html")
}

func TestRenderColor(t *testing.T) {
	ts := NewTestSystem(t)

	status, body := ts.request(http.MethodGet, "/color/green")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "background-color: green;")
	assert.Contains(t, body, "<em> green </em>")
}

func TestGetFavoriteUnset(t *testing.T) {
	ts := NewTestSystem(t)

	status, body := ts.request(http.MethodGet, "/color/favorite")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Favorite color not set yet.")
}

func TestSetFavorite(t *testing.T) {
	ts := NewTestSystem(t)

	status, body := ts.request(http.MethodPost, "/color/favorite/red")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Favorite color set to red")
}

func TestSetAndGetFavorite(t *testing.T) {
	ts := NewTestSystem(t)

	status, body := ts.request(http.MethodPost, "/color/favorite/blue")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Favorite color set to blue")

	status, body = ts.request(http.MethodGet, "/color/favorite")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "background-color: blue;")
	assert.Contains(t, body, "<em> blue </em>")
}

// TestClientRoundTrip drives the server through the client package
func TestClientRoundTrip(t *testing.T) {
	ts := NewTestSystem(t)
	c := client.New(ts.addr, 5*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))

	st, err := c.Favorite(ctx)
	require.NoError(t, err)
	assert.False(t, st.Set)

	_, err = c.SetFavorite(ctx, "red")
	require.NoError(t, err)
	_, err = c.SetFavorite(ctx, "goldenrod")
	require.NoError(t, err)

	st, err = c.Favorite(ctx)
	require.NoError(t, err)
	assert.True(t, st.Set)
	assert.Equal(t, "goldenrod", st.Color)
	assert.Equal(t, uint64(2), st.Updates)
}

// TestConcurrentClients tests many clients setting and reading at once
func TestConcurrentClients(t *testing.T) {
	ts := NewTestSystem(t)
	colors := []string{"red", "orange", "yellow", "green", "blue", "indigo", "violet"}

	var wg sync.WaitGroup
	for i := 0; i < 35; i++ {
		wg.Add(1)
		go func(color string) {
			defer wg.Done()
			c := client.New(ts.addr, 5*time.Second)
			if _, err := c.SetFavorite(context.Background(), color); err != nil {
				t.Errorf("set %s: %v", color, err)
			}
			if _, err := c.Favorite(context.Background()); err != nil {
				t.Errorf("get: %v", err)
			}
		}(colors[i%len(colors)])
	}
	wg.Wait()

	color, ok := ts.srv.Favorite().Get()
	require.True(t, ok)
	assert.Contains(t, colors, color)
}

func TestUnknownRoutes(t *testing.T) {
	ts := NewTestSystem(t)

	status, _ := ts.request(http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = ts.request(http.MethodPut, "/color/favorite/red")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}

// TestClientCSSColors tests colors with "/" and parentheses over a real connection
func TestClientCSSColors(t *testing.T) {
	ts := NewTestSystem(t)
	c := client.New(ts.addr, 5*time.Second)
	ctx := context.Background()

	for _, color := range []string{"rgb(0 0 0 / 50%)", "hsl(120, 100%, 50%)"} {
		body, err := c.ColorBlock(ctx, color)
		require.NoError(t, err)
		assert.Contains(t, body, "background-color: "+color+";")

		_, err = c.SetFavorite(ctx, color)
		require.NoError(t, err)

		st, err := c.Favorite(ctx)
		require.NoError(t, err)
		assert.Equal(t, color, st.Color)
	}
}
