// Package payrun holds payrun requests and the payslips the payroll backend
// computes for them. Amounts are never calculated here; Summarize only adds
// up backend figures for display.
package payrun

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
)

// Request asks the backend to pay a set of employees for a period.
type Request struct {
	PeriodStart string
	PeriodEnd   string
	EmployeeIDs []string
}

// Validate checks business rules for a payrun request.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (r *Request) Validate() error {
	fields := make(map[string]string)

	start, startOK := timesheet.ParseDate(r.PeriodStart)
	if !startOK {
		fields["periodStart"] = domain.MsgRequired
	}
	end, endOK := timesheet.ParseDate(r.PeriodEnd)
	switch {
	case !endOK:
		fields["periodEnd"] = domain.MsgRequired
	case startOK && end.Before(start):
		fields["periodEnd"] = "must not be before periodStart"
	}

	if len(r.EmployeeIDs) == 0 {
		fields["employeeIds"] = "at least one employee is required"
	}
	seen := make(map[string]struct{}, len(r.EmployeeIDs))
	for i, id := range r.EmployeeIDs {
		if strings.TrimSpace(id) == "" {
			fields[fmt.Sprintf("employeeIds[%d]", i)] = domain.MsgRequired
			continue
		}
		if _, dup := seen[id]; dup {
			fields[fmt.Sprintf("employeeIds[%d]", i)] = fmt.Sprintf("duplicate employee %q", id)
			continue
		}
		seen[id] = struct{}{}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// EmployeeRef is the employee summary embedded in a payslip.
type EmployeeRef struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// Payslip is one employee's pay for a payrun, as computed by the backend.
type Payslip struct {
	Employee      EmployeeRef
	Gross         float64
	Tax           float64
	Net           float64
	Super         float64
	NormalHours   float64
	OvertimeHours float64
}

// Payrun is a completed payrun.
type Payrun struct {
	ID          string
	PeriodStart string
	PeriodEnd   string
	Payslips    []Payslip
	CreatedAt   time.Time
}

// Totals is the column sum of a set of payslips.
type Totals struct {
	Gross         float64
	Tax           float64
	Net           float64
	Super         float64
	NormalHours   float64
	OvertimeHours float64
}

// Summarize adds up the payslip columns. Returns zero Totals for no payslips.
func Summarize(payslips []Payslip) Totals {
	var t Totals
	for i := range payslips {
		p := &payslips[i]
		t.Gross += p.Gross
		t.Tax += p.Tax
		t.Net += p.Net
		t.Super += p.Super
		t.NormalHours += p.NormalHours
		t.OvertimeHours += p.OvertimeHours
	}
	return t
}

// Readiness reports whether an employee has a timesheet for a payrun period.
type Readiness struct {
	EmployeeID  string
	TimesheetID string
	Ready       bool
	// Err is set when the lookup itself failed.
	Err error
}
