package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"loanboard/internal/amqp"
	"loanboard/internal/cli"
	apphttp "loanboard/internal/http"
	"loanboard/internal/log"
	"loanboard/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(log.ComponentApp)

	cfg := cli.LoadAndValidateConfig(logger)
	st := cli.OpenStore(logger, cfg)
	defer st.Close()

	// The change stream is optional. Without AMQP_URL the dashboard
	// runs standalone and mutations are not broadcast.
	var publisher services.ChangePublisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", log.FieldError, err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		publisher = amqpClient
		logger.Info("AMQP change stream enabled", "exchange", cfg.AMQPExchange)
	} else {
		logger.Info("AMQP change stream disabled - no AMQP_URL provided")
	}

	svc := services.NewLoanService(st, publisher, cfg.Settings(), logger)

	srv := apphttp.NewServer(":"+cfg.Port, svc)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
	})

	logger.Info("Starting loanboard server",
		"port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
