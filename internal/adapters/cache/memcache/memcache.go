// Package memcache is an in-process employee directory cache with a fixed
// time-to-live.
package memcache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EmployeeCache = (*Cache)(nil)
	_ ports.HealthChecker = (*Cache)(nil)
)

// Cache holds one copy of the employee list. Callers always receive their
// own slice, so mutating a result never changes the cached list.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.RWMutex
	employees []employee.Employee
	expires   time.Time
}

// New creates an empty Cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now}
}

// GetEmployees returns the cached list, or ok == false when it is empty or
// expired.
func (c *Cache) GetEmployees(_ context.Context) ([]employee.Employee, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.employees == nil || !c.now().Before(c.expires) {
		return nil, false, nil
	}
	return slices.Clone(c.employees), true, nil
}

// SetEmployees replaces the cached list and restarts its TTL.
func (c *Cache) SetEmployees(_ context.Context, employees []employee.Employee) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.employees = slices.Clone(employees)
	if c.employees == nil {
		c.employees = []employee.Employee{}
	}
	c.expires = c.now().Add(c.ttl)
	return nil
}

// InvalidateEmployees drops the cached list.
func (c *Cache) InvalidateEmployees(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.employees = nil
	c.expires = time.Time{}
	return nil
}

// Name identifies the cache in readiness reports.
func (c *Cache) Name() string {
	return "employee-cache"
}

// HealthCheck always succeeds; process memory cannot be unreachable.
func (c *Cache) HealthCheck(_ context.Context) error {
	return nil
}
