// Package cli provides shared initialization for the loanboard
// binaries: cmd/loanboard and cmd/loanboard-worker.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"loanboard/internal/config"
	"loanboard/internal/log"
	"loanboard/internal/store"
)

// SetupLogger initializes structured logging and installs it as the
// process default.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored since the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting
// the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore opens the loan store selected by DATA_BACKEND, seeding the
// dashboard's starter portfolio when configured. Exits the process on
// failure.
func OpenStore(logger *log.Logger, cfg *config.Config) store.LoanStore {
	switch cfg.DataBackend {
	case "sqlite":
		st, err := store.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open sqlite store",
				log.FieldError, err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		if cfg.SeedData {
			if err := st.SeedIfEmpty(context.Background()); err != nil {
				logger.Error("Failed to seed sqlite store", log.FieldError, err)
				os.Exit(1)
			}
		}
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
		return st
	default:
		var st store.LoanStore
		if cfg.SeedData {
			st = store.NewSeededMemoryStore()
		} else {
			st = store.NewMemoryStore()
		}
		logger.Info("Initialized memory backend", "seeded", cfg.SeedData)
		return st
	}
}

// GracefulShutdown installs signal handling. The returned context is
// cancelled after cleanup runs; done closes once shutdown finishes.
func GracefulShutdown(logger *log.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}

		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(2 * time.Second):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled and the
// shutdown goroutine has finished.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
