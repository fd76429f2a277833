// Package server runs the optional debug HTTP endpoint. It only exposes
// process health and Prometheus collectors and never touches game state.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/bloom/internal/handler"
	"github.com/osse101/bloom/internal/metrics"
)

// Config holds what the debug routes report
type Config struct {
	Addr      string
	Version   string
	SessionID string
	// Dependencies are pinged by /readyz
	Dependencies map[string]handler.Pinger
}

type Server struct {
	httpServer *http.Server
	listener   net.Listener
	done       chan struct{}
}

// NewServer creates a new debug server
func NewServer(cfg Config) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(cfg),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the debug routes
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(cfg.Dependencies))
	r.Get(PathVersion, handler.HandleVersion(cfg.Version, cfg.SessionID))
	r.Handle(PathMetrics, promhttp.Handler())

	return r
}

// Start binds the listen address and serves in the background. Binding
// errors are returned directly so a bad DEBUG_ADDR fails at startup.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln
	s.done = make(chan struct{})

	slog.Default().Info(LogMsgServerStarting, "addr", ln.Addr().String())
	go func() {
		defer close(s.done)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Default().Error(LogMsgServeFailed, "error", err)
		}
	}()
	return nil
}

// Addr returns the bound address, useful when listening on port 0
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.httpServer.Addr
	}
	return s.listener.Addr().String()
}

// Stop stops the server gracefully and waits for the serve loop to exit
func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.done != nil {
		select {
		case <-s.done:
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		}
	}
	slog.Default().Info(LogMsgServerStopped)
	return err
}
