package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gummi-coder/Novora-sub009/pkg/log"
)

func TestServer_ListenStopsOnCancel(t *testing.T) {
	srv := NewServer("127.0.0.1", 0, log.NewLogger(io.Discard))
	srv.SetHandler(http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Listen(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewServer_Addr(t *testing.T) {
	srv := NewServer("0.0.0.0", 5005, log.NewLogger(io.Discard))
	require.Equal(t, "0.0.0.0:5005", srv.Addr())
}
