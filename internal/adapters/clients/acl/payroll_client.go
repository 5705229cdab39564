package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/clients/acl/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/clients/acl/payrun"
	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/clients/acl/timesheet"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	domainemployee "github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	domainpayrun "github.com/jsamuelsen11/payroo-gateway/internal/domain/payrun"
	domaintimesheet "github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/auth"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PayrollClient = (*PayrollClient)(nil)
	_ auth.Issuer         = (*PayrollClient)(nil)
)

// PayrollClient is the outbound adapter for the payroll backend. It
// implements [ports.PayrollClient] and, for the token provider, [auth.Issuer].
//
// Wire shapes are translated by the subpackages [employee], [timesheet] and
// [payrun]. The {status, data, error} envelope and status mapping are
// handled by [Requester].
type PayrollClient struct {
	req *Requester
}

// NewPayrollClient creates a PayrollClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should include the backend's
// /api prefix.
func NewPayrollClient(client *httpclient.Client, logger *slog.Logger) *PayrollClient {
	return &PayrollClient{req: NewRequester(client, logger)}
}

// --- Session ---

type tokenRequest struct {
	Name string `json:"name"`
}

// IssueToken calls POST /employee/get-token. The envelope's data is the JWT.
func (c *PayrollClient) IssueToken(ctx context.Context, name string) (string, error) {
	var token string
	if err := c.req.Do(ctx, http.MethodPost, "/employee/get-token", nil, tokenRequest{Name: name}, &token); err != nil {
		return "", err
	}
	if token == "" {
		return "", errors.New("backend issued an empty token")
	}
	return token, nil
}

// --- Employees ---

// ListEmployees fetches GET /employee.
func (c *PayrollClient) ListEmployees(ctx context.Context) ([]domainemployee.Employee, error) {
	var dtos []employee.EmployeeDTO
	if err := c.req.Do(ctx, http.MethodGet, "/employee", nil, nil, &dtos); err != nil {
		return nil, err
	}
	return employee.ToDomainEmployeeList(dtos), nil
}

// CreateEmployee sends POST /employee and returns the stored record.
func (c *PayrollClient) CreateEmployee(ctx context.Context, e *domainemployee.Employee) (*domainemployee.Employee, error) {
	var dto employee.EmployeeDTO
	if err := c.req.Do(ctx, http.MethodPost, "/employee", nil, employee.ToCreateEmployeeRequest(e), &dto); err != nil {
		return nil, err
	}
	result := employee.ToDomainEmployee(&dto)
	return &result, nil
}

// UpdateEmployee sends PATCH /employee/{id}.
func (c *PayrollClient) UpdateEmployee(ctx context.Context, id string, p *domainemployee.Patch) (*domainemployee.Employee, error) {
	var dto employee.EmployeeDTO
	if err := c.req.Do(ctx, http.MethodPatch, "/employee/"+url.PathEscape(id), nil, employee.ToPatchEmployeeRequest(p), &dto); err != nil {
		return nil, err
	}
	result := employee.ToDomainEmployee(&dto)
	return &result, nil
}

// --- Timesheets ---

// ListTimesheets fetches GET /timesheet. Empty filter fields are not sent.
func (c *PayrollClient) ListTimesheets(ctx context.Context, filter domaintimesheet.Filter) ([]domaintimesheet.Timesheet, error) {
	var dtos []timesheet.TimesheetDTO
	if err := c.req.Do(ctx, http.MethodGet, "/timesheet", filterQuery(filter), nil, &dtos); err != nil {
		return nil, err
	}
	return timesheet.ToDomainTimesheetList(dtos), nil
}

// CreateTimesheet sends POST /timesheet.
func (c *PayrollClient) CreateTimesheet(ctx context.Context, d *domaintimesheet.Draft) (*domaintimesheet.Timesheet, error) {
	var dto timesheet.TimesheetDTO
	if err := c.req.Do(ctx, http.MethodPost, "/timesheet", nil, timesheet.ToTimesheetRequest(d), &dto); err != nil {
		return nil, err
	}
	result := timesheet.ToDomainTimesheet(&dto)
	return &result, nil
}

// UpdateTimesheet sends PATCH /timesheet/{id} with the full draft.
func (c *PayrollClient) UpdateTimesheet(ctx context.Context, id string, d *domaintimesheet.Draft) (*domaintimesheet.Timesheet, error) {
	if id == "" {
		return nil, fmt.Errorf("timesheet id is required: %w", domain.ErrValidation)
	}
	var dto timesheet.TimesheetDTO
	if err := c.req.Do(ctx, http.MethodPatch, "/timesheet/"+url.PathEscape(id), nil, timesheet.ToTimesheetRequest(d), &dto); err != nil {
		return nil, err
	}
	result := timesheet.ToDomainTimesheet(&dto)
	return &result, nil
}

// --- Payruns ---

// RunPayrun sends POST /payrun/run.
func (c *PayrollClient) RunPayrun(ctx context.Context, r *domainpayrun.Request) (*domainpayrun.Payrun, error) {
	var dto payrun.PayrunDTO
	if err := c.req.Do(ctx, http.MethodPost, "/payrun/run", nil, payrun.ToRunRequest(r), &dto); err != nil {
		return nil, err
	}
	result, err := payrun.ToDomainPayrun(&dto)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPayruns fetches GET /payrun.
func (c *PayrollClient) ListPayruns(ctx context.Context) ([]domainpayrun.Payrun, error) {
	var dtos []payrun.PayrunDTO
	if err := c.req.Do(ctx, http.MethodGet, "/payrun", nil, nil, &dtos); err != nil {
		return nil, err
	}
	return payrun.ToDomainPayrunList(dtos)
}

func filterQuery(f domaintimesheet.Filter) url.Values {
	q := url.Values{}
	if f.EmployeeID != "" {
		q.Set("employeeId", f.EmployeeID)
	}
	if f.PeriodStart != "" {
		q.Set("periodStart", f.PeriodStart)
	}
	if f.PeriodEnd != "" {
		q.Set("periodEnd", f.PeriodEnd)
	}
	return q
}
