package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/payroo-gateway/internal/platform/telemetry"
)

// count adds n to the counter chosen by pick. It is a no-op without metrics.
func count(ctx context.Context, m *telemetry.Metrics, pick func(*telemetry.Metrics) metric.Int64Counter, n int64, attrs ...attribute.KeyValue) {
	if m == nil || n == 0 {
		return
	}
	pick(m).Add(ctx, n, metric.WithAttributes(attrs...))
}

func violationCounter(m *telemetry.Metrics) metric.Int64Counter { return m.TimesheetViolationTotal }
func submitCounter(m *telemetry.Metrics) metric.Int64Counter    { return m.TimesheetSubmitTotal }
func payrunCounter(m *telemetry.Metrics) metric.Int64Counter    { return m.PayrunTotal }
func cacheCounter(m *telemetry.Metrics) metric.Int64Counter     { return m.CacheLookupTotal }
