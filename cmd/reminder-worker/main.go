package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Chemi-prog/family-budget-app-v2/internal/amqp"
	"github.com/Chemi-prog/family-budget-app-v2/internal/backend"
	"github.com/Chemi-prog/family-budget-app-v2/internal/cli"
	"github.com/Chemi-prog/family-budget-app-v2/internal/store"
	"github.com/Chemi-prog/family-budget-app-v2/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting reminder worker")

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

	// Without a broker the worker still runs its periodic scan; it just
	// cannot react to record-added events as they happen.
	amqpClient := cli.InitAMQP(logger, cfg)
	if amqpClient != nil {
		defer amqpClient.Close()
	}

	w := worker.NewReminderWorker(recordStore, eventSource(amqpClient), cfg.ReminderWindow, cfg.ReminderScanInterval)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("Reminder worker running",
		"window", cfg.ReminderWindow,
		"scan_interval", cfg.ReminderScanInterval)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Reminder worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Reminder worker stopped gracefully")
}

// eventSource keeps a nil *amqp.Client from becoming a non-nil interface.
func eventSource(c *amqp.Client) worker.EventSource {
	if c == nil {
		return nil
	}
	return c
}
