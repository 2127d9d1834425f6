package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chemi-prog/family-budget-app-v2/internal/amqp"
	"github.com/Chemi-prog/family-budget-app-v2/internal/backend"
	"github.com/Chemi-prog/family-budget-app-v2/internal/cli"
	apphttp "github.com/Chemi-prog/family-budget-app-v2/internal/http"
	"github.com/Chemi-prog/family-budget-app-v2/internal/services"
	"github.com/Chemi-prog/family-budget-app-v2/internal/store"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	factory := backend.NewFactory(logger)
	result, err := factory.Create(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize data backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	recordStore := store.New(result.Table, cfg.LoadCacheTTL)

	// AMQP is optional: without a broker the app still works, it just
	// publishes no record events.
	amqpClient := cli.InitAMQP(logger, cfg)
	if amqpClient != nil {
		defer amqpClient.Close()
	}

	recordService := services.NewRecordService(recordStore, eventPublisher(amqpClient))

	srv := apphttp.NewServer(":"+cfg.Port, recordService)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	logger.Info("Starting budget server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

// eventPublisher keeps a nil *amqp.Client from becoming a non-nil interface.
func eventPublisher(c *amqp.Client) services.EventPublisher {
	if c == nil {
		return nil
	}
	return c
}
