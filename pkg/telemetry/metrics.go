package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Int64Counter creates a counter on the global meter provider under scope.
// Instrument errors fall back to a no-op counter so callers never nil-check.
// Call after Setup so the Prometheus reader observes it.
func Int64Counter(scope, name, description, unit string) metric.Int64Counter {
	c, err := otel.Meter(scope).Int64Counter(name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
	if err != nil {
		otel.Handle(err)
		nc, _ := noop.NewMeterProvider().Meter(scope).Int64Counter(name)
		return nc
	}
	return c
}
