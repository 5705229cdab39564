// Package timesheet holds the weekly timesheet model and the rules that decide
// whether a timesheet draft may be submitted to the payroll backend.
//
// Everything in this package is pure: no I/O, no clocks, no time zones. The
// same rules run in the HTTP gateway and in the offline tscheck command.
package timesheet

// Entry is one calendar day's worked interval.
type Entry struct {
	Date      string
	StartTime string
	EndTime   string
	// BreakMins is nil when the submitted value was missing or not a number.
	BreakMins *float64
}

// Draft is a timesheet as offered for validation. Fields hold raw user input
// and are checked by Validate rather than on construction.
type Draft struct {
	ID          string
	EmployeeID  string
	PeriodStart string
	PeriodEnd   string
	Entries     []Entry
	// Allowances is nil when the submitted value was missing or not a number.
	Allowances *float64
}

// Timesheet is a timesheet as stored by the payroll backend.
type Timesheet struct {
	ID          string
	EmployeeID  string
	PeriodStart string
	PeriodEnd   string
	Entries     []Entry
	Allowances  float64
}

// Filter selects stored timesheets. Empty fields are not sent.
type Filter struct {
	EmployeeID  string
	PeriodStart string
	PeriodEnd   string
}

// Float returns a pointer to v. It is a convenience for building drafts.
func Float(v float64) *float64 {
	return &v
}
