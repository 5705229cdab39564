package ports

import (
	"context"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/payrun"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
)

// SessionService issues bearer tokens for console users.
type SessionService interface {
	// IssueToken returns a backend token for the named user.
	// Returns domain.ErrValidation if name is blank.
	IssueToken(ctx context.Context, name string) (string, error)
}

// EmployeeService defines the service port for the employee directory.
type EmployeeService interface {
	// ListEmployees returns all employees, from cache when warm.
	ListEmployees(ctx context.Context) ([]employee.Employee, error)

	// CreateEmployee validates and registers a new employee.
	// Returns domain.ErrValidation if the employee fails validation.
	CreateEmployee(ctx context.Context, emp *employee.Employee) (*employee.Employee, error)

	// UpdateEmployee applies a partial update.
	// Returns domain.ErrValidation for an empty or invalid patch and
	// domain.ErrNotFound if the employee does not exist.
	UpdateEmployee(ctx context.Context, id string, patch *employee.Patch) (*employee.Employee, error)
}

// TimesheetService defines the service port for weekly timesheets.
type TimesheetService interface {
	// ValidateDraft returns the rule violations for a draft, in order.
	// It never calls the backend.
	ValidateDraft(ctx context.Context, draft *timesheet.Draft) []string

	// ListTimesheets returns stored timesheets matching the filter.
	ListTimesheets(ctx context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error)

	// LoadWeek returns the editable seven-day week for an employee,
	// prefilled from the stored timesheet for the period if there is one.
	// Returns domain.ErrValidation if the employee or period is unusable.
	LoadWeek(ctx context.Context, employeeID, periodStart, periodEnd string) (*timesheet.Week, error)

	// SaveTimesheet checks the submission rules, then creates the timesheet
	// or updates the one already stored for the employee and period.
	// Returns a *domain.ViolationError when rules fail.
	SaveTimesheet(ctx context.Context, draft *timesheet.Draft) (*SaveResult, error)
}

// SaveResult reports the stored timesheet and whether it was newly created.
type SaveResult struct {
	Timesheet *timesheet.Timesheet
	Created   bool
}

// PayrunService defines the service port for payruns.
type PayrunService interface {
	// RunPayrun validates the request and asks the backend to run it.
	RunPayrun(ctx context.Context, req *payrun.Request) (*payrun.Payrun, error)

	// ListPayruns returns completed payruns.
	ListPayruns(ctx context.Context) ([]payrun.Payrun, error)

	// Preflight reports, per requested employee, whether a timesheet exists
	// for the period. Lookups run concurrently; a failed lookup is reported
	// in its Readiness entry rather than failing the call.
	Preflight(ctx context.Context, req *payrun.Request) ([]payrun.Readiness, error)
}
