// Package timesheet implements the Anti-Corruption Layer translators for the
// payroll backend's timesheet resources.
package timesheet

// TimesheetDTO matches a stored backend timesheet. The backend keys records
// by _id and omits it on create requests.
type TimesheetDTO struct {
	ID          string     `json:"_id,omitempty"`
	EmployeeID  string     `json:"employeeId"`
	PeriodStart string     `json:"periodStart"`
	PeriodEnd   string     `json:"periodEnd"`
	Allowances  *float64   `json:"allowances,omitempty"`
	Entries     []EntryDTO `json:"entries"`
}

// EntryDTO matches a backend timesheet entry. Stored dates may carry a time
// suffix; only the first 10 characters are significant.
type EntryDTO struct {
	Date            string   `json:"date"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	UnpaidBreakMins *float64 `json:"unpaidBreakMins,omitempty"`
}
