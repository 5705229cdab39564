package timesheet

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

// Week is a seven-day timesheet ready for editing: one entry per day of the
// period, prefilled from a stored timesheet where one exists.
type Week struct {
	// TimesheetID is empty when nothing is stored for the period yet.
	TimesheetID string
	EmployeeID  string
	PeriodStart string
	PeriodEnd   string
	Entries     []Entry
	Allowances  float64
}

// NewWeek builds the editable week for an employee and period. The period
// must be a seven-day range. Days with a stored entry take its times and
// break; the first stored entry for a date wins. Other days get a blank entry
// with a zero break.
func NewWeek(employeeID, start, end string, stored *Timesheet) (Week, error) {
	if strings.TrimSpace(employeeID) == "" || !IsSevenDayRange(start, end) {
		return Week{}, &domain.ViolationError{Violations: []string{MsgLoadGate}}
	}

	byDate := map[string]Entry{}
	w := Week{
		EmployeeID:  employeeID,
		PeriodStart: start,
		PeriodEnd:   end,
	}
	if stored != nil {
		w.TimesheetID = stored.ID
		w.Allowances = stored.Allowances
		for _, e := range stored.Entries {
			key := DateKey(e.Date)
			if _, ok := byDate[key]; !ok {
				byDate[key] = e
			}
		}
	}

	dates := DateRange(start, end)
	w.Entries = make([]Entry, 0, len(dates))
	for _, date := range dates {
		entry := Entry{Date: date, BreakMins: Float(0)}
		if found, ok := byDate[date]; ok {
			entry.StartTime = found.StartTime
			entry.EndTime = found.EndTime
			entry.BreakMins = found.BreakMins
			if entry.BreakMins == nil {
				entry.BreakMins = Float(0)
			}
		}
		w.Entries = append(w.Entries, entry)
	}
	return w, nil
}

// Draft converts the week into a draft for validation and submission.
func (w Week) Draft() Draft {
	entries := make([]Entry, len(w.Entries))
	copy(entries, w.Entries)
	return Draft{
		ID:          w.TimesheetID,
		EmployeeID:  w.EmployeeID,
		PeriodStart: w.PeriodStart,
		PeriodEnd:   w.PeriodEnd,
		Entries:     entries,
		Allowances:  Float(w.Allowances),
	}
}

// String implements fmt.Stringer for log output.
func (w Week) String() string {
	return fmt.Sprintf("week %s..%s employee=%s", w.PeriodStart, w.PeriodEnd, w.EmployeeID)
}
