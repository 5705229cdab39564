package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
	_ "time/tzdata" // display.timezone must resolve on hosts without zoneinfo

	"golang.org/x/text/language"
)

// problems collects every failed rule of a section so one Load reports them
// all at once.
type problems []error

// require records the formatted message unless ok holds.
func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// oneOf records an error unless got is one of allowed.
func (p *problems) oneOf(key, got string, allowed ...string) {
	p.require(slices.Contains(allowed, got), "%s must be one of: %v; got %q", key, allowed, got)
}

func (p *problems) err() error { return errors.Join(*p...) }

// Validate checks every section and joins what fails.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Auth.validate(),
		c.Cache.validate(),
		c.Payrun.validate(),
		c.Display.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var p problems
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive, got %s", s.ReadTimeout)
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive, got %s", s.WriteTimeout)
	return p.err()
}

func (l *LogConfig) validate() error {
	var p problems
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
	return p.err()
}

func (cl *ClientConfig) validate() error {
	var p problems
	p.require(cl.BaseURL != "", "client.base_url must not be empty")
	p.require(cl.Timeout > 0, "client.timeout must be positive, got %s", cl.Timeout)

	p.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)

	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.require(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	// A zero rate turns limiting off, and then burst is unused.
	p.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", rl.BurstSize)
	return p.err()
}

func (a *AuthConfig) validate() error {
	var p problems
	p.require(a.Principal != "", "auth.principal must not be empty")
	p.require(a.RefreshSkew >= 0, "auth.refresh_skew must not be negative, got %s", a.RefreshSkew)
	return p.err()
}

func (c *CacheConfig) validate() error {
	var p problems
	p.oneOf("cache.backend", c.Backend, CacheBackendMemory, CacheBackendRedis, CacheBackendNone)
	if c.Backend == CacheBackendRedis {
		p.require(c.Redis.Addr != "", "cache.redis.addr must not be empty when backend is redis")
	}
	if c.Backend != CacheBackendNone {
		p.require(c.TTL > 0, "cache.ttl must be positive, got %s", c.TTL)
	}
	return p.err()
}

func (pc *PayrunConfig) validate() error {
	var p problems
	p.require(pc.PreflightWorkers >= 1, "payrun.preflight_workers must be >= 1, got %d", pc.PreflightWorkers)
	return p.err()
}

func (d *DisplayConfig) validate() error {
	var errs []error
	if _, err := language.Parse(d.Locale); err != nil {
		errs = append(errs, fmt.Errorf("display.locale %q: %w", d.Locale, err))
	}
	if _, err := time.LoadLocation(d.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("display.timezone %q: %w", d.Timezone, err))
	}
	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var p problems
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	if t.Exporter == "otlp" {
		p.require(t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	}
	return p.err()
}
