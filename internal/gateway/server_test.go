package gateway

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewServer(t *testing.T) {
	mux := http.NewServeMux()
	server := NewServer("8080", mux, newTestLogger())

	assert.NotNil(t, server)
	assert.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
}

func TestServer_Timeouts(t *testing.T) {
	mux := http.NewServeMux()
	server := NewServer("8080", mux, newTestLogger())

	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
}

func TestServer_ShutdownHooksRunInOrder(t *testing.T) {
	server := NewServer("8080", http.NewServeMux(), newTestLogger())

	var order []string
	server.OnShutdown(func() { order = append(order, "cache") })
	server.OnShutdown(func() { order = append(order, "hub") })

	server.runShutdownHooks()

	assert.Equal(t, []string{"cache", "hub"}, order)
}
