// Package server exposes the predictor binding over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aouyang1/go-predictor/binding"
	"github.com/aouyang1/go-predictor/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server wraps an echo instance serving the binding functions.
type Server struct {
	cfg     *config.Config
	log     zerolog.Logger
	echo    *echo.Echo
	metrics *Metrics
}

// New builds a server for the caller. Calls are instrumented when metrics are enabled.
func New(cfg *config.Config, log zerolog.Logger, caller binding.Caller) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	e.Use(requestLogging(log))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	s := &Server{
		cfg:  cfg,
		log:  log,
		echo: e,
	}

	if cfg.Metrics.Enabled {
		s.metrics = NewMetrics()
		caller = newInstrumentedCaller(caller, s.metrics)
		e.GET(cfg.Metrics.Path, echo.WrapHandler(
			promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}),
		))
	}

	NewHandler(log, caller).RegisterRoutes(e)
	return s
}

// Handler returns the http handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Metrics returns the call metrics or nil when metrics are disabled.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.cfg.Server.WriteTimeout

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Server.Addr).Msg("http server listening")
		if err := s.echo.Start(s.cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	s.log.Info().Msg("http server stopped gracefully")
	return nil
}
