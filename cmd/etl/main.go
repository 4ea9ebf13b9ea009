// Command etl runs one cleaning pass over the GSAF spreadsheet: download,
// load, normalize columns, write the cleaned sheet. Behavior is controlled
// entirely through environment variables; see internal/config.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/shark-data-etl/internal/adapter/gsaf"
	httpadapter "github.com/couchcryptid/shark-data-etl/internal/adapter/http"
	"github.com/couchcryptid/shark-data-etl/internal/adapter/sheet"
	"github.com/couchcryptid/shark-data-etl/internal/config"
	"github.com/couchcryptid/shark-data-etl/internal/observability"
	"github.com/couchcryptid/shark-data-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := gsaf.NewClient(cfg.FetchTimeout, logger)
	store := sheet.NewStore(logger)

	p := pipeline.New(fetcher, store, store, pipeline.CleaningStages(cfg), cfg, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional admin server, useful when the run is scraped or probed.
	var srv *httpadapter.Server
	if cfg.HTTPEnabled {
		srv = httpadapter.NewServer(cfg.HTTPAddr, p, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	report, err := p.Run(ctx)
	if err != nil {
		logger.Error("cleaning run failed", "error", err)
		shutdownServer(srv, cfg, logger)
		os.Exit(1)
	}

	logger.Info("cleaning run finished",
		"rows_loaded", report.RowsLoaded,
		"rows_written", report.RowsWritten,
		"bytes_fetched", report.BytesFetched,
		"output", cfg.OutputPath,
	)

	// With the admin server enabled the process stays up for scraping until
	// it receives a shutdown signal.
	if srv != nil {
		logger.Info("serving metrics until shutdown signal")
		<-ctx.Done()
	}
	shutdownServer(srv, cfg, logger)
}

func shutdownServer(srv *httpadapter.Server, cfg *config.Config, logger *slog.Logger) {
	if srv == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
}
