package ports

import "context"

// HealthChecker is a dependency the readiness probe reports on, such as the
// payroll backend clients or the employee cache.
type HealthChecker interface {
	// Name keys the checker in the readiness body ("payroll-api",
	// "employee-cache").
	Name() string

	// HealthCheck returns nil when the dependency is usable.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
