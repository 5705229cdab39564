package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// Compile-time check that EmployeeService implements ports.EmployeeService.
var _ ports.EmployeeService = (*EmployeeService)(nil)

// EmployeeService serves the employee directory cache-aside: reads try the
// cache first, and every successful write invalidates it. Cache failures are
// logged and never fail the request.
type EmployeeService struct {
	client       ports.PayrollClient
	cache        ports.EmployeeCache // nil disables caching
	cacheBackend string
	metrics      *telemetry.Metrics
	logger       *slog.Logger
}

// NewEmployeeService creates an EmployeeService. cache may be nil, in which
// case every read goes to the backend. cacheBackend labels cache metrics.
func NewEmployeeService(
	client ports.PayrollClient,
	cache ports.EmployeeCache,
	cacheBackend string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *EmployeeService {
	return &EmployeeService{
		client:       client,
		cache:        cache,
		cacheBackend: cacheBackend,
		metrics:      metrics,
		logger:       orDiscard(logger),
	}
}

// ListEmployees returns all employees, from cache when warm.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	if cached, ok := s.cached(ctx); ok {
		return cached, nil
	}

	employees, err := s.client.ListEmployees(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list employees",
			slog.String("operation", "ListEmployees"),
			slog.Any("error", err),
		)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetEmployees(ctx, employees); err != nil {
			s.logger.WarnContext(ctx, "failed to fill employee cache",
				slog.String("operation", "ListEmployees"),
				slog.Any("error", err),
			)
		}
	}
	return employees, nil
}

// CreateEmployee validates and registers a new employee.
func (s *EmployeeService) CreateEmployee(ctx context.Context, emp *employee.Employee) (*employee.Employee, error) {
	if err := emp.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating employee", slog.String("email", emp.Email))

	created, err := s.client.CreateEmployee(ctx, emp)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create employee",
			slog.String("operation", "CreateEmployee"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.invalidate(ctx, "CreateEmployee")
	return created, nil
}

// UpdateEmployee validates and applies a partial update.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, patch *employee.Patch) (*employee.Employee, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating employee", slog.String("employee_id", id))

	updated, err := s.client.UpdateEmployee(ctx, id, patch)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update employee",
			slog.String("operation", "UpdateEmployee"),
			slog.String("employee_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.invalidate(ctx, "UpdateEmployee")
	return updated, nil
}

func (s *EmployeeService) cached(ctx context.Context) ([]employee.Employee, bool) {
	if s.cache == nil {
		return nil, false
	}

	employees, ok, err := s.cache.GetEmployees(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "employee cache read failed",
			slog.String("operation", "ListEmployees"),
			slog.Any("error", err),
		)
		ok = false
	}

	result := telemetry.ResultMiss
	if ok {
		result = telemetry.ResultHit
	}
	count(ctx, s.metrics, cacheCounter, 1,
		telemetry.AttrResult.String(result),
		telemetry.AttrCache.String(s.cacheBackend),
	)
	return employees, ok
}

func (s *EmployeeService) invalidate(ctx context.Context, operation string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateEmployees(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate employee cache",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}
