package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/rs/zerolog"
)

// Server runs an http.Server whose lifecycle is driven by Start and Stop,
// so it can be bound to fx hooks.
//
//	srv := httpserver.New(cfg, router, logger)
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
//	defer srv.Stop(context.Background())
type Server struct {
	httpServer *http.Server
	config     Config
	logger     zerolog.Logger

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
}

// New creates a Server serving handler. Zero config fields take their
// DefaultConfig values.
func New(cfg Config, handler http.Handler, logger zerolog.Logger) *Server {
	cfg = cfg.withDefaults()

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		config: cfg,
		logger: logger,
	}
}

// Start binds the listen address and serves in the background. It returns
// once the listener is bound, so a bind failure aborts application start.
func (s *Server) Start(ctx context.Context) error {
	if s.httpServer.Handler == nil {
		return errors.New("httpserver: handler is required")
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("httpserver: listen %s: %w", s.config.Addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("server starting")

	go func() {
		defer close(done)
		// ErrServerClosed is expected after Stop.
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("server error")
		}
	}()
	return nil
}

// Stop shuts the server down gracefully, waiting up to ShutdownTimeout
// for in-flight requests before closing the remaining connections.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info().
		Dur("timeout", s.config.ShutdownTimeout).
		Msg("starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("graceful shutdown failed, forcing close")
		if closeErr := s.httpServer.Close(); closeErr != nil {
			s.logger.Error().Err(closeErr).Msg("force close failed")
		}
		return err
	}

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}

	s.logger.Info().Msg("server stopped gracefully")
	return nil
}

// Addr returns the bound address once started, the configured one before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.config.Addr
}
