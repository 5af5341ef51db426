package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	entgenerated "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated"
	"github.com/eslsoft/courseboxd/internal/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg        config.Config
	httpServer *http.Server
	entClient  *entgenerated.Client
	logger     zerolog.Logger
}

// NewServer constructs a Server from the provided dependencies.
func NewServer(cfg config.Config, handler http.Handler, entClient *entgenerated.Client, logger zerolog.Logger) *Server {
	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler,
		},
		entClient: entClient,
		logger:    logger,
	}
}

// Handler exposes the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the HTTP server and blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.cfg.HTTPAddress).Msg("http server listening")
		if err := s.httpServer.ListenAndServe(); err != nil {
			errCh <- err
		} else {
			close(errCh)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn().Err(err).Msg("graceful shutdown interrupted")
		}
		_ = s.entClient.Close()
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = s.entClient.Close()
			return err
		}
		return nil
	}
}
