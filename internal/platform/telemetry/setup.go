package telemetry

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
)

// Providers owns what Setup started. When telemetry is disabled Metrics is
// nil and Shutdown does nothing; every instrumented component accepts a nil
// *Metrics.
type Providers struct {
	Metrics *Metrics

	shutdown []func(context.Context) error
}

// Setup installs the global tracer and meter providers described by cfg and
// builds the gateway's instruments on the meter.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	p := &Providers{}
	if !cfg.Enabled {
		return p, nil
	}

	tp, err := InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	p.shutdown = append(p.shutdown, tp.Shutdown)

	mp, err := InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	p.shutdown = append(p.shutdown, mp.Shutdown)

	if p.Metrics, err = NewMetrics(mp, cfg.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return p, nil
}

// Shutdown flushes and stops the providers, meter first.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, stop := range slices.Backward(p.shutdown) {
		if err := stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
