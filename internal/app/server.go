package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// Server runs an http.Server and shuts it down gracefully on SIGINT/SIGTERM.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewServer wraps handler in an http.Server listening on the given port.
func NewServer(handler http.Handler, port string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
		shutdownTimeout: 10 * time.Second,
	}
}

// Run serves until a termination signal arrives or the listener fails,
// then drains in-flight requests.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("cartonization service listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info().Msg("termination signal received, draining requests")
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits up to the shutdown
// timeout for in-flight requests to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown deadline exceeded, closing connections")
		return err
	}

	log.Info().Msg("cartonization service stopped")
	return nil
}
