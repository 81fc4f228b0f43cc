package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lezioni/internal/amqp"
	"lezioni/internal/config"
	apphttp "lezioni/internal/http"
	applog "lezioni/internal/log"
	"lezioni/internal/service"
	"lezioni/internal/store"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result, err := store.New(ctx, cfg.StoreConfig(), logger.WithComponent(applog.ComponentStore).Logger)
	if err != nil {
		logger.Error("Failed to initialize store backend", "error", err,
			applog.FieldBackend, cfg.StoreBackend.String())
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Store cleanup failed", "error", err)
			}
		}()
	}

	// The ledger publisher is optional: without AMQP_URL payments are only
	// persisted locally.
	var ledger service.LedgerPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		ledger = client
		logger.Info("Payment ledger publishing enabled",
			applog.FieldExchange, cfg.AMQPExchange, applog.FieldQueue, cfg.AMQPQueue)
	} else {
		logger.Info("Payment ledger publishing disabled - no AMQP_URL provided")
	}

	registry := service.NewRegistry(result.Backend, ledger)
	srv := apphttp.NewServer(":"+cfg.Port, registry)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting lezioni server",
		"port", cfg.Port, applog.FieldBackend, cfg.StoreBackend.String())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
