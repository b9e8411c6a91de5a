package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Address is the listen address.
	// Default: ":8080".
	Address string

	// ReadHeaderTimeout bounds reading request headers.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// WriteTimeout bounds writing a response.
	// Default: 30 seconds.
	WriteTimeout time.Duration

	// IdleTimeout bounds keep-alive connections.
	// Default: 120 seconds.
	IdleTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server runs an HTTP server with graceful shutdown.
type Server struct {
	config     *ServerConfig
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server for handler. Unset config fields take defaults.
func New(config *ServerConfig, handler http.Handler) *Server {
	defaults := DefaultServerConfig()
	if config == nil {
		config = defaults
	} else {
		c := *config
		if c.Address == "" {
			c.Address = defaults.Address
		}
		if c.ReadHeaderTimeout == 0 {
			c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
		}
		if c.WriteTimeout == 0 {
			c.WriteTimeout = defaults.WriteTimeout
		}
		if c.IdleTimeout == 0 {
			c.IdleTimeout = defaults.IdleTimeout
		}
		if c.ShutdownTimeout == 0 {
			c.ShutdownTimeout = defaults.ShutdownTimeout
		}
		config = &c
	}

	return &Server{
		config: config,
		httpServer: &http.Server{
			Addr:              config.Address,
			Handler:           handler,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
			WriteTimeout:      config.WriteTimeout,
			IdleTimeout:       config.IdleTimeout,
		},
		logger: slog.Default().With("component", "server"),
	}
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		return err
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Config returns the server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// SetLogger sets the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}
