// Package config loads the gateway's settings with koanf. Keys are the
// dotted koanf paths used in configs/*.yaml, for example client.retry.max_attempts.
package config

import "time"

// Config is the gateway configuration after defaults, YAML and environment are merged.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Auth      AuthConfig      `koanf:"auth"`
	Cache     CacheConfig     `koanf:"cache"`
	Payrun    PayrunConfig    `koanf:"payrun"`
	Display   DisplayConfig   `koanf:"display"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig describes the outbound client for the payroll backend.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig bounds backoff between attempts. MaxAttempts counts the first try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips after MaxFailures consecutive failures and probes
// again after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig is an outbound token bucket; zero RequestsPerSecond turns it off.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// AuthConfig holds the service identity used when a request carries no
// bearer token of its own.
type AuthConfig struct {
	Principal   string        `koanf:"principal"`
	RefreshSkew time.Duration `koanf:"refresh_skew"`
}

// CacheConfig holds employee directory cache settings.
type CacheConfig struct {
	Backend string        `koanf:"backend"`
	TTL     time.Duration `koanf:"ttl"`
	Redis   RedisConfig   `koanf:"redis"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// PayrunConfig tunes preflight fan-out. With RequireTimesheets set, a
// payrun is refused for any employee without a timesheet in the period.
type PayrunConfig struct {
	PreflightWorkers  int  `koanf:"preflight_workers"`
	RequireTimesheets bool `koanf:"require_timesheets"`
}

// DisplayConfig is the locale and zone used to format payrun summaries.
type DisplayConfig struct {
	Locale   string `koanf:"locale"`
	Timezone string `koanf:"timezone"`
}

type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
