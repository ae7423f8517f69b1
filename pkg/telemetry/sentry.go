package telemetry

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/stockroom/pkg/config"
)

// Request headers never forwarded to Sentry. Session cookies grant staff
// access and idempotency keys let a client replay a recording.
var scrubbedHeaders = []string{"Cookie", "Authorization", "Idempotency-Key"}

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: 0.2,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return ScrubEvent(event)
		},
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("storage_driver", cfg.StorageDriver)
		scope.SetTag("timezone", cfg.Timezone)
	})
	return nil
}

// ScrubEvent drops credentials from the captured request.
func ScrubEvent(event *sentry.Event) *sentry.Event {
	if event == nil || event.Request == nil {
		return event
	}
	event.Request.Cookies = ""
	for name := range event.Request.Headers {
		for _, s := range scrubbedHeaders {
			if strings.EqualFold(name, s) {
				delete(event.Request.Headers, name)
			}
		}
	}
	return event
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics.
// Repanic: true so the outer Recovery middleware still writes the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true, Timeout: 2 * time.Second})
	return h.Handle
}
