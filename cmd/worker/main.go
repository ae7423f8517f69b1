package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.temporal.io/sdk/worker"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/telemetry"
	"github.com/ghuser/stockroom/pkg/workflows"
	"github.com/ghuser/stockroom/services/item/application/reorder"
	itemServices "github.com/ghuser/stockroom/services/item/application/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	if cfg.UsesMemoryStorage() {
		log.Error("worker needs STORAGE_DRIVER=postgres; with memory storage the api process handles reorder events")
		os.Exit(1)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Error("invalid timezone", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	// EventBus.Close() waits up to 30s for in-flight handlers.
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Db:       pool,
		Clock:    clock.System(loc),
		Logger:   log,
		EventBus: eventBus,
	}

	redisClient, err := cache.NewRedisClient(cfg)
	switch {
	case errors.Is(err, cache.ErrRedisDisabled):
	case err != nil:
		log.Warn("redis unavailable, continuing without it", "error", err)
	default:
		defer redisClient.Close() //nolint:errcheck
		appConfig.Redis = redisClient
	}

	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
		appConfig.TemporalClient = temporalClient
	}

	items := itemServices.New(appConfig).Item
	acts := &reorder.Activities{Items: items, Log: log}
	notifier := reorder.NewNotifier(appConfig.TemporalClient, acts)

	if err := reorder.Subscribe(ctx, eventBus, notifier, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	var w worker.Worker
	if appConfig.TemporalClient != nil {
		w = appConfig.TemporalClient.NewWorker()
		w.RegisterWorkflow(reorder.ReorderWorkflow)
		w.RegisterActivity(acts)
		if err := w.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("temporal worker started", "task_queue", cfg.TemporalTaskQueue)
	}

	var sweep *reorder.Sweep
	if cfg.ReorderSweepSchedule != "" {
		sweep = reorder.NewSweep(items, notifier, log, loc)
		if err := sweep.Start(cfg.ReorderSweepSchedule); err != nil {
			log.Error("failed to start reorder sweep", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	if sweep != nil {
		sweep.Stop()
	}
	if w != nil {
		w.Stop()
	}
	cancel()
	log.Info("worker stopped")
}
