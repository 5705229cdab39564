// Package main is the entry point for the payroo gateway. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/payroo-gateway/internal/adapters/http"
	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/cache/memcache"
	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/cache/rediscache"
	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/payroo-gateway/internal/app"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/auth"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/display"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/health"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/logging"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, apiClientName))
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, authClientName))
	cache := do.MustInvoke[*employeeCache](injector)
	if cache.checker != nil {
		registry.Register(cache.checker)
	}
	defer cache.close(logger)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete", slog.String("cache", cache.backend))
	return nil
}

// Named clients. The auth client issues tokens and so carries no token source
// of its own; the api client sends every call with a bearer token.
const (
	authClientName = "payroll-auth"
	apiClientName  = "payroll-api"
)

// employeeCache is the configured employee directory cache. cache and checker
// are nil for the "none" backend.
type employeeCache struct {
	backend string
	cache   ports.EmployeeCache
	checker ports.HealthChecker
	closer  io.Closer
}

func newEmployeeCache(cfg *config.CacheConfig) *employeeCache {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		c := rediscache.NewFromConfig(cfg)
		return &employeeCache{backend: cfg.Backend, cache: c, checker: c, closer: c}
	case config.CacheBackendNone:
		return &employeeCache{backend: cfg.Backend}
	default:
		c := memcache.New(cfg.TTL)
		return &employeeCache{backend: config.CacheBackendMemory, cache: c, checker: c}
	}
}

func (c *employeeCache) close(logger *slog.Logger) {
	if c.closer == nil {
		return
	}
	if err := c.closer.Close(); err != nil {
		logger.Error("cache close error", slog.String("cache", c.backend), slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerClients(injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)
}

func registerClients(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.ProvideNamed(injector, authClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, authClientName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*auth.TokenProvider, error) {
		authHTTP := do.MustInvokeNamed[*httpclient.Client](i, authClientName)
		return auth.NewTokenProvider(acl.NewPayrollClient(authHTTP, logger), &cfg.Auth, logger), nil
	})

	do.ProvideNamed(injector, apiClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		tokens := do.MustInvoke[*auth.TokenProvider](i)
		return httpclient.New(&cfg.Client, apiClientName, metrics, logger, httpclient.WithTokenSource(tokens)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PayrollClient, error) {
		apiHTTP := do.MustInvokeNamed[*httpclient.Client](i, apiClientName)
		return acl.NewPayrollClient(apiHTTP, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*employeeCache, error) {
		return newEmployeeCache(&cfg.Cache), nil
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Token issuing goes through the auth client so a caller asking for a
	// token is never sent with the service token.
	do.Provide(injector, func(i do.Injector) (ports.SessionService, error) {
		authHTTP := do.MustInvokeNamed[*httpclient.Client](i, authClientName)
		return app.NewSessionService(acl.NewPayrollClient(authHTTP, logger), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EmployeeService, error) {
		client := do.MustInvoke[ports.PayrollClient](i)
		cache := do.MustInvoke[*employeeCache](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewEmployeeService(client, cache.cache, cache.backend, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TimesheetService, error) {
		client := do.MustInvoke[ports.PayrollClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTimesheetService(client, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PayrunService, error) {
		client := do.MustInvoke[ports.PayrollClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewPayrunService(client, &cfg.Payrun, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*display.Formatter, error) {
		return display.New(&cfg.Display)
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		h := adapthttp.Handlers{
			Session:   handlers.NewSessionHandler(do.MustInvoke[ports.SessionService](i)),
			Employee:  handlers.NewEmployeeHandler(do.MustInvoke[ports.EmployeeService](i)),
			Timesheet: handlers.NewTimesheetHandler(do.MustInvoke[ports.TimesheetService](i)),
			Payrun:    handlers.NewPayrunHandler(do.MustInvoke[ports.PayrunService](i), do.MustInvoke[*display.Formatter](i)),
			Health:    handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Bearer(nil),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
