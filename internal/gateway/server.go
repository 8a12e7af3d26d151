package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 20 * time.Second
)

// Server wraps the profile service's HTTP listener with signal-driven
// graceful shutdown. Background workers that must outlive in-flight
// requests, like the preview hub, register through OnShutdown.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	onShutdown []func()
}

func NewServer(port string, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		logger: logger,
	}
}

// OnShutdown registers fn to run after the listener has drained.
// Hooks run in registration order.
func (s *Server) OnShutdown(fn func()) {
	s.onShutdown = append(s.onShutdown, fn)
}

// Start serves until the listener fails or an interrupt arrives. On
// interrupt it drains in-flight requests, then runs the shutdown
// hooks so the preview hub closes its sessions last.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("profile server listening", "addr", s.httpServer.Addr)
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		s.logger.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.httpServer.Close()
			s.runShutdownHooks()
			return fmt.Errorf("could not gracefully shutdown server: %w", err)
		}

		s.runShutdownHooks()
		s.logger.Info("profile server stopped")
	}

	return nil
}

func (s *Server) runShutdownHooks() {
	for _, fn := range s.onShutdown {
		fn()
	}
}
