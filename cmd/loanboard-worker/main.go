package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"loanboard/internal/amqp"
	"loanboard/internal/cli"
	"loanboard/internal/config"
	"loanboard/internal/log"
	"loanboard/internal/store"
	"loanboard/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(log.ComponentWorker)

	logger.Info("Starting loanboard-worker")

	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the export worker")
		os.Exit(1)
	}
	// The worker needs a store shared with the server process, so the
	// in-memory backend cannot serve it.
	if cfg.DataBackend != "sqlite" {
		logger.Error("Export worker requires DATA_BACKEND=sqlite",
			"backend", cfg.DataBackend)
		os.Exit(1)
	}

	st, err := store.NewSQLiteStore(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open sqlite store",
			log.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer st.Close()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	exporter := worker.NewExportWorker(st, cfg.ExportPath, logger)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	// An initial snapshot covers events missed while the worker was
	// down.
	if err := exporter.WriteSnapshot(ctx); err != nil {
		logger.Error("Failed startup snapshot", log.FieldError, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeLoanChanges(gctx, exporter.HandleChangeMessage)
	})

	g.Go(func() error {
		return runPeriodicExport(gctx, exporter, cfg, logger)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", log.FieldError, err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped gracefully")
}

// runPeriodicExport rewrites the snapshot on a fixed interval as a
// safety net for dropped events.
func runPeriodicExport(ctx context.Context, exporter *worker.ExportWorker, cfg *config.Config, logger *log.Logger) error {
	ticker := time.NewTicker(cfg.ExportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := exporter.WriteSnapshot(ctx); err != nil {
				logger.Error("Periodic snapshot failed", log.FieldError, err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
