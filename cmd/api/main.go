package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/stockroom/docs/swagger"
	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/memdb"
	"github.com/ghuser/stockroom/pkg/migrator"
	"github.com/ghuser/stockroom/pkg/telemetry"
	"github.com/ghuser/stockroom/pkg/workflows"
	itemApi "github.com/ghuser/stockroom/services/item/application/api"
	"github.com/ghuser/stockroom/services/item/application/reorder"
	itemServices "github.com/ghuser/stockroom/services/item/application/services"
	ledgerApi "github.com/ghuser/stockroom/services/ledger/application/api"
	pricingApi "github.com/ghuser/stockroom/services/pricing/application/api"
)

// @title					Stockroom API
// @version				1.0
// @description			Chess-shop inventory: item registry, price history and stock ledger.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
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

	loc, err := cfg.Location()
	if err != nil {
		log.Error("invalid timezone", "error", err)
		os.Exit(1)
	}

	// Telemetry: OTel tracing + metrics
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	appConfig := &app.Application{
		Clock:  clock.System(loc),
		Logger: log,
	}
	var checks httpx.HealthChecks

	if cfg.UsesMemoryStorage() {
		appConfig.Mem = memdb.New()
		appConfig.EventBus = events.NewInMemoryEventBus(log)
		log.Warn("using in-memory storage; data is lost on restart")
	} else {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer pool.Close()
		if v, err := migrator.Version(pool.DB()); err != nil {
			log.Warn("could not read schema version", "error", err)
		} else {
			log.Info("database pool connected", "schema_version", v)
		}

		eventBus, err := events.NewEventBusWithForwarder(cfg, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		appConfig.Db = pool
		appConfig.EventBus = eventBus
		checks.Database = pool
		checks.EventBus = eventBus
	}
	defer appConfig.EventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	switch {
	case errors.Is(err, cache.ErrRedisDisabled):
		log.Warn("redis disabled; idempotency keys are ignored and sessions use cookies")
	case err != nil:
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	default:
		defer redisClient.Close() //nolint:errcheck
		appConfig.Redis = redisClient
		appConfig.Idempotency = cache.NewIdempotencyStore(redisClient)
		checks.Redis = redisClient
		log.Info("redis connected")
	}

	appConfig.SessionStore = newSessionStore(cfg, redisClient)

	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer temporalClient.Close()
		appConfig.TemporalClient = temporalClient
	}

	// The in-memory bus only reaches subscribers in this process, so the API
	// takes over the worker's reorder subscriptions.
	if appConfig.EventBus.InMemory() {
		acts := &reorder.Activities{Items: itemServices.New(appConfig).Item, Log: log}
		if err := reorder.Subscribe(ctx, appConfig.EventBus, reorder.NewNotifier(appConfig.TemporalClient, acts), log); err != nil {
			log.Error("failed to register subscribers", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			DocsPrefix:         "/swagger/",
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		if cfg.AuthRequired {
			r.Use(auth.RequireAuth(appConfig.SessionStore, log))
		}
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// newSessionStore keeps sessions in Redis when available and falls back to
// encrypted cookies otherwise.
func newSessionStore(cfg *config.Config, redisClient *cache.RedisClient) sessions.Store {
	secure := cfg.Environment == config.EnvProduction
	if redisClient == nil {
		return auth.NewCookieSessionStore([]byte(cfg.SessionAuthKey), []byte(cfg.SessionEncryptionKey), secure)
	}
	return auth.NewSessionStore(redisClient.Client(), []byte(cfg.SessionAuthKey), []byte(cfg.SessionEncryptionKey), secure)
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	itemApi.ItemRoutes(r, a)
	pricingApi.PricingRoutes(r, a)
	ledgerApi.LedgerRoutes(r, a)
}
