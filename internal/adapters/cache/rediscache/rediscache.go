// Package rediscache shares the employee directory between gateway replicas
// through Redis. The list is stored as one JSON value with a TTL.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EmployeeCache = (*Cache)(nil)
	_ ports.HealthChecker = (*Cache)(nil)
)

// DefaultKey is the Redis key holding the employee directory.
const DefaultKey = "payroo:employees"

// Cache is a Redis-backed [ports.EmployeeCache].
type Cache struct {
	rdb redis.UniversalClient
	key string
	ttl time.Duration
}

// New wraps an existing Redis client.
func New(rdb redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, key: DefaultKey, ttl: ttl}
}

// NewFromConfig dials Redis lazily from cache settings. The caller owns the
// returned Cache and should Close it on shutdown.
func NewFromConfig(cfg *config.CacheConfig) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return New(rdb, cfg.TTL)
}

// GetEmployees reads the cached list. A missing key is a miss, not an error.
func (c *Cache) GetEmployees(ctx context.Context) ([]employee.Employee, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", c.key, err)
	}

	var employees []employee.Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", c.key, err)
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	return employees, true, nil
}

// SetEmployees writes the list with the configured TTL.
func (c *Cache) SetEmployees(ctx context.Context, employees []employee.Employee) error {
	if employees == nil {
		employees = []employee.Employee{}
	}
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.key, err)
	}
	if err := c.rdb.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", c.key, err)
	}
	return nil
}

// InvalidateEmployees deletes the cached list.
func (c *Cache) InvalidateEmployees(ctx context.Context) error {
	if err := c.rdb.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("deleting %s: %w", c.key, err)
	}
	return nil
}

// Name identifies the cache in readiness reports.
func (c *Cache) Name() string {
	return "employee-cache"
}

// HealthCheck pings Redis.
func (c *Cache) HealthCheck(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases the Redis connection pool.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
