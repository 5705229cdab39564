package dto

import (
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/payrun"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
)

// TokenRequest is the body of POST /api/v1/session/token.
type TokenRequest struct {
	Name string `json:"name"`
}

// BankRequest is the bank account block of an employee request.
type BankRequest struct {
	BSB     string `json:"bsb" validate:"required"`
	Account string `json:"account" validate:"required,numeric"`
}

// CreateEmployeeRequest is the body of POST /api/v1/employees.
type CreateEmployeeRequest struct {
	FirstName      string      `json:"firstName" validate:"required"`
	LastName       string      `json:"lastName" validate:"required"`
	Email          string      `json:"email" validate:"required,email"`
	Type           string      `json:"type" validate:"omitempty,oneof=HOURLY"`
	BaseHourlyRate float64     `json:"baseHourlyRate" validate:"gt=0"`
	SuperRate      float64     `json:"superRate" validate:"gte=0,lte=100"`
	Bank           BankRequest `json:"bank"`
	Status         string      `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// Validate checks the request's tags.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateEmployeeRequest) Validate() error {
	return requestValidator.Struct(r)
}

// ToDomain maps the request to a new Employee. Type defaults to HOURLY and
// Status to ACTIVE.
func (r *CreateEmployeeRequest) ToDomain() *employee.Employee {
	e := &employee.Employee{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Type:           employee.TypeHourly,
		BaseHourlyRate: r.BaseHourlyRate,
		SuperRate:      r.SuperRate,
		Bank:           employee.Bank{BSB: r.Bank.BSB, Account: r.Bank.Account},
		Status:         employee.StatusActive,
	}
	if r.Type != "" {
		e.Type = employee.Type(r.Type)
	}
	if r.Status != "" {
		e.Status = employee.Status(r.Status)
	}
	return e
}

// UpdateEmployeeRequest is the body of PATCH /api/v1/employees/{id}.
// All fields are optional; nil means "do not change this field.".
type UpdateEmployeeRequest struct {
	FirstName      *string      `json:"firstName,omitempty" validate:"omitnil,min=1"`
	LastName       *string      `json:"lastName,omitempty" validate:"omitnil,min=1"`
	Email          *string      `json:"email,omitempty" validate:"omitnil,email"`
	Type           *string      `json:"type,omitempty" validate:"omitnil,oneof=HOURLY"`
	BaseHourlyRate *float64     `json:"baseHourlyRate,omitempty" validate:"omitnil,gt=0"`
	SuperRate      *float64     `json:"superRate,omitempty" validate:"omitnil,gte=0,lte=100"`
	Bank           *BankRequest `json:"bank,omitempty"`
	Status         *string      `json:"status,omitempty" validate:"omitnil,oneof=ACTIVE INACTIVE"`
}

// Validate checks the request's tags.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateEmployeeRequest) Validate() error {
	return requestValidator.Struct(r)
}

// ToDomain maps the request to an employee Patch.
func (r *UpdateEmployeeRequest) ToDomain() *employee.Patch {
	p := &employee.Patch{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		BaseHourlyRate: r.BaseHourlyRate,
		SuperRate:      r.SuperRate,
	}
	if r.Type != nil {
		t := employee.Type(*r.Type)
		p.Type = &t
	}
	if r.Status != nil {
		s := employee.Status(*r.Status)
		p.Status = &s
	}
	if r.Bank != nil {
		p.Bank = &employee.Bank{BSB: r.Bank.BSB, Account: r.Bank.Account}
	}
	return p
}

// TimesheetRequest is a timesheet draft as the console sends it, for both
// POST /api/v1/timesheets/validate and PUT /api/v1/timesheets. Numeric
// fields are lenient: a value that is not a number is passed on as absent.
type TimesheetRequest struct {
	ID          string         `json:"id,omitempty"`
	EmployeeID  string         `json:"employeeId"`
	PeriodStart string         `json:"periodStart"`
	PeriodEnd   string         `json:"periodEnd"`
	Allowances  Number         `json:"allowances"`
	Entries     []EntryRequest `json:"entries"`
}

// EntryRequest is one day of a TimesheetRequest.
type EntryRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	BreakMins Number `json:"breakMins"`
}

// ToDomain maps the request to a timesheet Draft without checking it.
func (r *TimesheetRequest) ToDomain() *timesheet.Draft {
	d := &timesheet.Draft{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		Allowances:  r.Allowances.Ptr(),
		Entries:     make([]timesheet.Entry, len(r.Entries)),
	}
	for i, e := range r.Entries {
		d.Entries[i] = timesheet.Entry{
			Date:      e.Date,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			BreakMins: e.BreakMins.Ptr(),
		}
	}
	return d
}

// PayrunRequest is the body of POST /api/v1/payruns and its preflight.
type PayrunRequest struct {
	PeriodStart string   `json:"periodStart"`
	PeriodEnd   string   `json:"periodEnd"`
	EmployeeIDs []string `json:"employeeIds"`
}

// ToDomain maps the request to a payrun Request. Rules are checked by the
// payrun service.
func (r *PayrunRequest) ToDomain() *payrun.Request {
	return &payrun.Request{
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		EmployeeIDs: r.EmployeeIDs,
	}
}
