// Package cache groups the employee directory cache adapters. Each
// subpackage implements [ports.EmployeeCache] and [ports.HealthChecker]:
//
//   - memcache keeps the directory in process memory
//   - rediscache shares it between gateway replicas through Redis
//
// cmd/server picks one by cache.backend; "none" wires no cache at all.
package cache
