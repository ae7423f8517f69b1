package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/memdb"
	"github.com/ghuser/stockroom/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's Routes call during server initialization.
//
// Exactly one of Db and Mem is set, following STORAGE_DRIVER.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "price recorded", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db             *database.Database
	Mem            *memdb.Store
	Clock          clock.Clock // business calendar; "today" comes from here
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient        // nil when REDIS_URL is empty
	Idempotency    httpx.IdempotencyClaimer  // nil disables Idempotency-Key handling
	TemporalClient *workflows.TemporalClient // nil when Temporal is disabled
	SessionStore   sessions.Store            // nil in worker process
}

// InMemory reports whether the in-process store backs the repositories.
func (a *Application) InMemory() bool {
	return a.Mem != nil
}
