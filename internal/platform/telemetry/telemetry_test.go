package telemetry_test

import (
	"context"
	"slices"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/telemetry"
)

// Init and Setup replace the global providers, so those tests run serially.

func TestSetup_Disabled(t *testing.T) {
	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false, Exporter: "bogus"})
	if err != nil {
		t.Fatalf("Setup(disabled) error = %v", err)
	}
	if p.Metrics != nil {
		t.Error("Metrics != nil with telemetry disabled")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestSetup_Stdout(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "payroo-gateway",
	})
	if err != nil {
		t.Fatalf("Setup(stdout) error = %v", err)
	}
	if p.Metrics == nil || p.Metrics.PayrunTotal == nil {
		t.Fatal("Setup(stdout) did not build metrics")
	}

	fields := otel.GetTextMapPropagator().Fields()
	for _, want := range []string{"traceparent", "baggage"} {
		if !slices.Contains(fields, want) {
			t.Errorf("propagator fields = %v, want %s", fields, want)
		}
	}

	if err := p.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestSetup_RejectsBadExporter(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{name: "unsupported exporter", cfg: config.TelemetryConfig{Enabled: true, Exporter: "zipkin"}},
		{name: "otlp without endpoint", cfg: config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := telemetry.Setup(context.Background(), tt.cfg); err == nil {
				t.Error("Setup() error = nil, want error")
			}
		})
	}
}

func TestInit_OTLP(t *testing.T) {
	ctx := context.Background()

	for _, endpoint := range []string{"http://localhost:4318", "https://collector.example.com:4318"} {
		t.Run(endpoint, func(t *testing.T) {
			tp, err := telemetry.InitTracer(ctx, "payroo-gateway", telemetry.ExporterOTLP, endpoint)
			if err != nil {
				t.Fatalf("InitTracer(otlp) error = %v", err)
			}
			mp, err := telemetry.InitMeter(ctx, "payroo-gateway", telemetry.ExporterOTLP, endpoint)
			if err != nil {
				t.Fatalf("InitMeter(otlp) error = %v", err)
			}
			// No collector is listening; flushing may fail.
			_ = mp.Shutdown(ctx)
			_ = tp.Shutdown(ctx)
		})
	}
}

func TestNewMetrics_RegistersInstruments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	m, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "payroo-gateway")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.02)
	m.ClientRequestTotal.Add(ctx, 1)
	m.TimesheetViolationTotal.Add(ctx, 3)
	m.TimesheetSubmitTotal.Add(ctx, 1)
	m.PayrunTotal.Add(ctx, 1)
	m.CacheLookupTotal.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	var names []string
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			names = append(names, metric.Name)
		}
	}

	for _, want := range []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"payroo.timesheet.violations",
		"payroo.timesheet.submits",
		"payroo.payrun.runs",
		"payroo.cache.lookups",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("collected metrics %v, missing %s", names, want)
		}
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "payroo-gateway")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}
	m.TimesheetViolationTotal.Add(context.Background(), 2)
}
