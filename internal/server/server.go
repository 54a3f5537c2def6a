// Package server exposes the estimator over a small JSON HTTP API: the
// form backend that replaces the original in-process UI.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecometric/footprint/internal/config"
	"github.com/ecometric/footprint/internal/estimate"
	"github.com/ecometric/footprint/internal/factors"
)

const shutdownTimeout = 10 * time.Second

// Server wires the registry and estimator to HTTP handlers. All
// dependencies are immutable after construction, so requests may be
// served concurrently without locks.
type Server struct {
	registry  *factors.Registry
	estimator *estimate.Estimator
	rules     []estimate.Rule
	averages  estimate.ReferenceAverages
	addr      string
	logger    zerolog.Logger
}

// New builds a Server from a loaded registry and configuration.
func New(registry *factors.Registry, cfg config.Config, logger zerolog.Logger) *Server {
	return &Server{
		registry:  registry,
		estimator: estimate.NewEstimator(registry, logger),
		rules:     cfg.EstimateRules(),
		averages:  cfg.Averages,
		addr:      cfg.Server.ListenAddr,
		logger:    logger,
	}
}

// Router returns the request multiplexer with all routes registered.
func (s *Server) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/estimate", withRequestLog(s.logger, s.handleEstimate))
	mux.HandleFunc("GET /api/v1/factors", withRequestLog(s.logger, s.handleFactors))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("starting footprint API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("shutdown failed")
		return err
	}
	return <-errChan
}
