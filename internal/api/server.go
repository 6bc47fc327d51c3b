package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"
)

// ServerConfig holds the listen address and shutdown grace period for
// the local solve API
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// DefaultServerConfig binds to loopback; the API is a local tool, not
// a network service
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:            "127.0.0.1",
		Port:            8080,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server runs the solve API with graceful shutdown. Requests and
// responses are small JSON bodies, so a header read limit is the only
// per-request timeout needed.
type Server struct {
	server *http.Server
	logger *slog.Logger
	grace  time.Duration
}

// NewServer creates a solve API server around the given handler
func NewServer(handler http.Handler, config ServerConfig, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		grace:  config.ShutdownTimeout,
	}
}

// Start listens until the server is shut down or fails
func (s *Server) Start() error {
	s.logger.Info("solve API listening", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("solve API: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, up to the configured grace period
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("stopping solve API")

	ctx, cancel := context.WithTimeout(ctx, s.grace)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("solve API shutdown: %w", err)
	}
	return nil
}

// Addr returns the server's listen address
func (s *Server) Addr() string {
	return s.server.Addr
}
