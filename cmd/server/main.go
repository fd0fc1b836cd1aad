package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/qa-forum/backend/internal/router"
	"github.com/anonto42/qa-forum/backend/pkg/config"
	"github.com/anonto42/qa-forum/backend/pkg/logger"
	"github.com/anonto42/qa-forum/backend/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("development", "info")
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

// run serves the API until ctx is cancelled or a listener fails
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// Initialize database connection
	db, err := config.InitDB(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	m := metrics.New()
	if err := m.InstrumentDB(db.Conn); err != nil {
		return err
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = !cfg.IsProduction()

	router.SetupMiddleware(e, log, m)
	router.SetupRoutes(e, db.Conn)

	errCh := make(chan error, 2)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var metricsSrv *http.Server
	if cfg.MetricsPort != "" {
		metricsSrv = &http.Server{
			Addr:              ":" + cfg.MetricsPort,
			Handler:           m.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info().Str("addr", metricsSrv.Addr).Msg("metrics server listening")
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("metrics server shutdown")
		}
	}
	return serveErr
}
