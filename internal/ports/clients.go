package ports

import (
	"context"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/payrun"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
)

// PayrollClient defines the client port for the remote payroll backend.
// Implemented by the ACL adapter; called by the application layer.
// Methods map 1:1 to backend endpoints using domain terminology.
type PayrollClient interface {
	// IssueToken exchanges a principal name for a bearer token.
	IssueToken(ctx context.Context, name string) (string, error)

	// ListEmployees returns every employee known to the backend.
	ListEmployees(ctx context.Context) ([]employee.Employee, error)

	// CreateEmployee registers a new employee and returns the stored record.
	CreateEmployee(ctx context.Context, emp *employee.Employee) (*employee.Employee, error)

	// UpdateEmployee applies a partial update.
	// Returns domain.ErrNotFound if the employee does not exist.
	UpdateEmployee(ctx context.Context, id string, patch *employee.Patch) (*employee.Employee, error)

	// ListTimesheets returns stored timesheets matching the filter.
	ListTimesheets(ctx context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error)

	// CreateTimesheet stores a new timesheet.
	CreateTimesheet(ctx context.Context, draft *timesheet.Draft) (*timesheet.Timesheet, error)

	// UpdateTimesheet replaces a stored timesheet.
	// Returns domain.ErrNotFound if the timesheet does not exist.
	UpdateTimesheet(ctx context.Context, id string, draft *timesheet.Draft) (*timesheet.Timesheet, error)

	// RunPayrun asks the backend to compute payslips for a period.
	RunPayrun(ctx context.Context, req *payrun.Request) (*payrun.Payrun, error)

	// ListPayruns returns completed payruns with their payslips.
	ListPayruns(ctx context.Context) ([]payrun.Payrun, error)
}

// EmployeeCache holds the employee directory between backend reads.
// A miss is reported as ok == false with a nil error.
type EmployeeCache interface {
	GetEmployees(ctx context.Context) (employees []employee.Employee, ok bool, err error)
	SetEmployees(ctx context.Context, employees []employee.Employee) error
	InvalidateEmployees(ctx context.Context) error
}
