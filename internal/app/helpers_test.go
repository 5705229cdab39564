package app

import (
	"context"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/telemetry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validEmployee() employee.Employee {
	return employee.Employee{
		ID:             "e-1",
		FirstName:      "Alice",
		LastName:       "Chen",
		Email:          "alice@example.com",
		Type:           employee.TypeHourly,
		BaseHourlyRate: 35,
		SuperRate:      11.5,
		Bank:           employee.Bank{BSB: "083-123", Account: "12345678"},
		Status:         employee.StatusActive,
	}
}

// weekDraft is a submittable draft for 2025-08-11..2025-08-17 with one
// entry per day.
func weekDraft() timesheet.Draft {
	dates := timesheet.DateRange("2025-08-11", "2025-08-17")
	entries := make([]timesheet.Entry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, timesheet.Entry{Date: d, StartTime: "09:00", EndTime: "17:30", BreakMins: timesheet.Float(30)})
	}
	return timesheet.Draft{
		EmployeeID:  "e-1",
		PeriodStart: "2025-08-11",
		PeriodEnd:   "2025-08-17",
		Entries:     entries,
		Allowances:  timesheet.Float(50),
	}
}

func testMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	m, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return m, reader
}

// counterValue sums the data points of the named counter that carry attr.
func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string, attr attribute.KeyValue) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if m.Name != name || !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(attr.Key); ok && v.Emit() == attr.Value.Emit() {
					total += dp.Value
				}
			}
		}
	}
	return total
}
