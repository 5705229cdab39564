// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/payrun"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/display"
)

// TokenResponse carries a backend bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// EmployeeResponse represents a single employee in HTTP responses.
type EmployeeResponse struct {
	ID             string       `json:"id"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	FullName       string       `json:"fullName"`
	Email          string       `json:"email"`
	Type           string       `json:"type"`
	BaseHourlyRate float64      `json:"baseHourlyRate"`
	SuperRate      float64      `json:"superRate"`
	Bank           BankResponse `json:"bank"`
	Status         string       `json:"status"`
}

// BankResponse is an employee's bank account.
type BankResponse struct {
	BSB     string `json:"bsb"`
	Account string `json:"account"`
}

// EmployeeListResponse represents a list of employees in HTTP responses.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Count     int                `json:"count"`
}

// ToEmployeeResponse converts a domain Employee to an HTTP response DTO.
func ToEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Email:          e.Email,
		Type:           string(e.Type),
		BaseHourlyRate: e.BaseHourlyRate,
		SuperRate:      e.SuperRate,
		Bank:           BankResponse{BSB: e.Bank.BSB, Account: e.Bank.Account},
		Status:         string(e.Status),
	}
}

// ToEmployeeListResponse converts domain employees to an HTTP list response.
func ToEmployeeListResponse(employees []employee.Employee) EmployeeListResponse {
	items := make([]EmployeeResponse, len(employees))
	for i := range employees {
		items[i] = ToEmployeeResponse(&employees[i])
	}
	return EmployeeListResponse{Employees: items, Count: len(items)}
}

// PeriodResponse describes the days of a pay period.
type PeriodResponse struct {
	Dates           []string `json:"dates"`
	Days            int      `json:"days"`
	IsSevenDayRange bool     `json:"isSevenDayRange"`
}

// ToPeriodResponse expands start..end into its calendar days.
func ToPeriodResponse(start, end string) PeriodResponse {
	dates := timesheet.DateRange(start, end)
	return PeriodResponse{
		Dates:           dates,
		Days:            len(dates),
		IsSevenDayRange: timesheet.IsSevenDayRange(start, end),
	}
}

// EntryResponse is one day of a timesheet. BreakMins is null when the
// stored value is missing.
type EntryResponse struct {
	Date      string   `json:"date"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	BreakMins *float64 `json:"breakMins"`
}

func toEntryResponses(entries []timesheet.Entry) []EntryResponse {
	items := make([]EntryResponse, len(entries))
	for i, e := range entries {
		items[i] = EntryResponse{
			Date:      e.Date,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			BreakMins: e.BreakMins,
		}
	}
	return items
}

// TimesheetResponse represents a stored timesheet.
type TimesheetResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	PeriodStart string          `json:"periodStart"`
	PeriodEnd   string          `json:"periodEnd"`
	Allowances  float64         `json:"allowances"`
	Entries     []EntryResponse `json:"entries"`
}

// TimesheetListResponse represents a list of stored timesheets.
type TimesheetListResponse struct {
	Timesheets []TimesheetResponse `json:"timesheets"`
	Count      int                 `json:"count"`
}

// ToTimesheetResponse converts a stored Timesheet to an HTTP response DTO.
func ToTimesheetResponse(ts *timesheet.Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:          ts.ID,
		EmployeeID:  ts.EmployeeID,
		PeriodStart: ts.PeriodStart,
		PeriodEnd:   ts.PeriodEnd,
		Allowances:  ts.Allowances,
		Entries:     toEntryResponses(ts.Entries),
	}
}

// ToTimesheetListResponse converts stored timesheets to a list response.
func ToTimesheetListResponse(list []timesheet.Timesheet) TimesheetListResponse {
	items := make([]TimesheetResponse, len(list))
	for i := range list {
		items[i] = ToTimesheetResponse(&list[i])
	}
	return TimesheetListResponse{Timesheets: items, Count: len(items)}
}

// SaveTimesheetResponse reports the stored timesheet after a save.
type SaveTimesheetResponse struct {
	Timesheet TimesheetResponse `json:"timesheet"`
	Created   bool              `json:"created"`
}

// WeekResponse is the editable seven-day week for an employee. TimesheetID
// is empty when nothing is stored for the period yet.
type WeekResponse struct {
	TimesheetID string          `json:"timesheetId"`
	EmployeeID  string          `json:"employeeId"`
	PeriodStart string          `json:"periodStart"`
	PeriodEnd   string          `json:"periodEnd"`
	Allowances  float64         `json:"allowances"`
	Entries     []EntryResponse `json:"entries"`
}

// ToWeekResponse converts a domain Week to an HTTP response DTO.
func ToWeekResponse(w *timesheet.Week) WeekResponse {
	return WeekResponse{
		TimesheetID: w.TimesheetID,
		EmployeeID:  w.EmployeeID,
		PeriodStart: w.PeriodStart,
		PeriodEnd:   w.PeriodEnd,
		Allowances:  w.Allowances,
		Entries:     toEntryResponses(w.Entries),
	}
}

// ValidateResponse is the result of POST /api/v1/timesheets/validate.
type ValidateResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

// ToValidateResponse wraps the violations of a draft. A nil list encodes as
// an empty array.
func ToValidateResponse(violations []string) ValidateResponse {
	if violations == nil {
		violations = []string{}
	}
	return ValidateResponse{Valid: len(violations) == 0, Violations: violations}
}

// PayslipResponse is one employee's payslip. Raw amounts are kept beside
// their display strings so the console can sort and total.
type PayslipResponse struct {
	EmployeeID    string         `json:"employeeId"`
	EmployeeName  string         `json:"employeeName"`
	Email         string         `json:"email"`
	Gross         float64        `json:"gross"`
	Tax           float64        `json:"tax"`
	Net           float64        `json:"net"`
	Super         float64        `json:"super"`
	NormalHours   float64        `json:"normalHours"`
	OvertimeHours float64        `json:"overtimeHours"`
	Display       AmountsDisplay `json:"display"`
}

// AmountsDisplay holds locale-formatted amounts and hours.
type AmountsDisplay struct {
	Gross         string `json:"gross"`
	Tax           string `json:"tax"`
	Net           string `json:"net"`
	Super         string `json:"super"`
	NormalHours   string `json:"normalHours"`
	OvertimeHours string `json:"overtimeHours"`
}

// TotalsResponse sums a payrun's payslips.
type TotalsResponse struct {
	Gross         float64        `json:"gross"`
	Tax           float64        `json:"tax"`
	Net           float64        `json:"net"`
	Super         float64        `json:"super"`
	NormalHours   float64        `json:"normalHours"`
	OvertimeHours float64        `json:"overtimeHours"`
	Display       AmountsDisplay `json:"display"`
}

// PayrunResponse represents a payrun formatted for display.
type PayrunResponse struct {
	ID          string            `json:"id"`
	PeriodStart string            `json:"periodStart"`
	PeriodEnd   string            `json:"periodEnd"`
	Period      string            `json:"period"`
	CreatedAt   string            `json:"createdAt,omitempty"`
	CreatedOn   string            `json:"createdOn,omitempty"`
	Payslips    []PayslipResponse `json:"payslips"`
	Totals      TotalsResponse    `json:"totals"`
}

// PayrunListResponse represents a list of payruns.
type PayrunListResponse struct {
	Payruns []PayrunResponse `json:"payruns"`
	Count   int              `json:"count"`
}

// ToPayrunResponse converts a domain Payrun, formatting amounts and dates
// with f.
func ToPayrunResponse(p *payrun.Payrun, f *display.Formatter) PayrunResponse {
	resp := PayrunResponse{
		ID:          p.ID,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		Period:      f.DateString(p.PeriodStart) + " - " + f.DateString(p.PeriodEnd),
		Payslips:    make([]PayslipResponse, len(p.Payslips)),
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.UTC().Format(time.RFC3339)
		resp.CreatedOn = f.DateTime(p.CreatedAt)
	}

	for i, ps := range p.Payslips {
		resp.Payslips[i] = PayslipResponse{
			EmployeeID:    ps.Employee.ID,
			EmployeeName:  strings.TrimSpace(ps.Employee.FirstName + " " + ps.Employee.LastName),
			Email:         ps.Employee.Email,
			Gross:         ps.Gross,
			Tax:           ps.Tax,
			Net:           ps.Net,
			Super:         ps.Super,
			NormalHours:   ps.NormalHours,
			OvertimeHours: ps.OvertimeHours,
			Display:       amounts(f, ps.Gross, ps.Tax, ps.Net, ps.Super, ps.NormalHours, ps.OvertimeHours),
		}
	}

	t := payrun.Summarize(p.Payslips)
	resp.Totals = TotalsResponse{
		Gross:         t.Gross,
		Tax:           t.Tax,
		Net:           t.Net,
		Super:         t.Super,
		NormalHours:   t.NormalHours,
		OvertimeHours: t.OvertimeHours,
		Display:       amounts(f, t.Gross, t.Tax, t.Net, t.Super, t.NormalHours, t.OvertimeHours),
	}
	return resp
}

// ToPayrunListResponse converts payruns to a list response.
func ToPayrunListResponse(payruns []payrun.Payrun, f *display.Formatter) PayrunListResponse {
	items := make([]PayrunResponse, len(payruns))
	for i := range payruns {
		items[i] = ToPayrunResponse(&payruns[i], f)
	}
	return PayrunListResponse{Payruns: items, Count: len(items)}
}

func amounts(f *display.Formatter, gross, tax, net, super, normal, overtime float64) AmountsDisplay {
	return AmountsDisplay{
		Gross:         f.Money(gross),
		Tax:           f.Money(tax),
		Net:           f.Money(net),
		Super:         f.Money(super),
		NormalHours:   f.Hours(normal),
		OvertimeHours: f.Hours(overtime),
	}
}

// ReadinessResponse is one employee's preflight result.
type ReadinessResponse struct {
	EmployeeID  string `json:"employeeId"`
	TimesheetID string `json:"timesheetId,omitempty"`
	Ready       bool   `json:"ready"`
	Error       string `json:"error,omitempty"`
}

// PreflightResponse reports per-employee payrun readiness. Ready is true
// only when every employee has a timesheet.
type PreflightResponse struct {
	Ready     bool                `json:"ready"`
	Employees []ReadinessResponse `json:"employees"`
}

// ToPreflightResponse converts preflight results in request order.
func ToPreflightResponse(results []payrun.Readiness) PreflightResponse {
	resp := PreflightResponse{Ready: len(results) > 0, Employees: make([]ReadinessResponse, len(results))}
	for i, r := range results {
		item := ReadinessResponse{EmployeeID: r.EmployeeID, TimesheetID: r.TimesheetID, Ready: r.Ready}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		if !r.Ready {
			resp.Ready = false
		}
		resp.Employees[i] = item
	}
	return resp
}
