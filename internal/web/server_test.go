package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/swatch/internal/logging"
	"github.com/dreamware/swatch/internal/render"
)

func TestNewServer(t *testing.T) {
	srv := NewServer(":0", render.MustNew(""), logging.Discard())

	require.NotNil(t, srv)
	assert.NotNil(t, srv.router)
	assert.NotNil(t, srv.server)
	assert.Equal(t, ":0", srv.server.Addr)

	_, ok := srv.Favorite().Get()
	assert.False(t, ok, "favorite starts unset")
}

// TestServeAndShutdown tests the server lifecycle over a real listener
func TestServeAndShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(l.Addr().String(), render.MustNew(""), logging.Discard())

	done := make(chan error, 1)
	go func() { done <- srv.Serve(l) }()

	base := "http://" + l.Addr().String()
	client := &http.Client{Timeout: 2 * time.Second}

	resp, err := client.Post(base+"/color/favorite/red", "text/plain", nil)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Favorite color set to red")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestStartInvalidAddr(t *testing.T) {
	srv := NewServer("256.0.0.1:bad", render.MustNew(""), logging.Discard())
	assert.Error(t, srv.Start())
}
