package timesheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

// Violation messages. They are shown to users verbatim.
const (
	MsgEmployeeRequired    = "Employee is required."
	MsgPeriodStartRequired = "Period start date is required."
	MsgPeriodEndRequired   = "Period end date is required."
	MsgPeriodEndBeforeFrom = "Period end date must be after start date."
	MsgEntriesRequired     = "At least one timesheet entry is required."
	MsgAllowancesNegative  = "Allowances must be 0 or more."
	MsgNotSevenDays        = "Date range must be exactly 7 days."
	MsgLoadGate            = "Please select employee and a valid 7-day date range."
)

// clockPattern matches a 24-hour HH:mm time.
var clockPattern = regexp.MustCompile(`^([0-1]\d|2[0-3]):([0-5]\d)$`)

// IsClock reports whether s is a 24-hour HH:mm time.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// Validate checks a draft against the submission rules and returns every
// violation found, in a fixed order. An empty result means the draft can be
// submitted. The seven-day rule is not checked here; see ValidateForSubmit.
func Validate(d Draft) []string {
	violations := []string{}

	if strings.TrimSpace(d.EmployeeID) == "" {
		violations = append(violations, MsgEmployeeRequired)
	}

	start, startOK := ParseDate(d.PeriodStart)
	if !startOK {
		violations = append(violations, MsgPeriodStartRequired)
	}
	end, endOK := ParseDate(d.PeriodEnd)
	switch {
	case !endOK:
		violations = append(violations, MsgPeriodEndRequired)
	case startOK && end.Before(start):
		violations = append(violations, MsgPeriodEndBeforeFrom)
	}

	if len(d.Entries) == 0 {
		violations = append(violations, MsgEntriesRequired)
	}
	for i, e := range d.Entries {
		n := i + 1
		if _, ok := ParseDate(e.Date); !ok {
			violations = append(violations, fmt.Sprintf("Entry %d: Date is required.", n))
		}
		if !IsClock(e.StartTime) {
			violations = append(violations, fmt.Sprintf("Entry %d: Start time must be in HH:mm format.", n))
		}
		if !IsClock(e.EndTime) {
			violations = append(violations, fmt.Sprintf("Entry %d: End time must be in HH:mm format.", n))
		}
		if e.BreakMins == nil || *e.BreakMins < 0 {
			violations = append(violations, fmt.Sprintf("Entry %d: Break minutes must be 0 or more.", n))
		}
	}

	if d.Allowances == nil || *d.Allowances < 0 {
		violations = append(violations, MsgAllowancesNegative)
	}

	return violations
}

// ValidateForSubmit returns the Validate violations followed by the rules the
// save path enforces on top: the seven-day period, end time after start time,
// entry dates inside the period, and one entry per date.
func ValidateForSubmit(d Draft) []string {
	violations := Validate(d)

	start, startOK := ParseDate(d.PeriodStart)
	end, endOK := ParseDate(d.PeriodEnd)
	periodOK := startOK && endOK && !end.Before(start)
	if periodOK && !IsSevenDayRange(d.PeriodStart, d.PeriodEnd) {
		violations = append(violations, MsgNotSevenDays)
	}

	seen := make(map[string]struct{}, len(d.Entries))
	for i, e := range d.Entries {
		n := i + 1
		if IsClock(e.StartTime) && IsClock(e.EndTime) && e.EndTime <= e.StartTime {
			violations = append(violations, fmt.Sprintf("Entry %d: End time must be after start time.", n))
		}

		day, ok := ParseDate(e.Date)
		if !ok {
			continue
		}
		if periodOK && (day.Before(start) || day.After(end)) {
			violations = append(violations, fmt.Sprintf("Entry %d: Date must be within the period.", n))
		}
		key := day.Format(DateLayout)
		if _, dup := seen[key]; dup {
			violations = append(violations, fmt.Sprintf("Entry %d: Duplicate entry for %s.", n, key))
			continue
		}
		seen[key] = struct{}{}
	}

	return violations
}

// Check runs ValidateForSubmit and returns a *domain.ViolationError wrapping
// domain.ErrValidation when any rule fails, or nil.
func Check(d Draft) error {
	if violations := ValidateForSubmit(d); len(violations) > 0 {
		return &domain.ViolationError{Violations: violations}
	}
	return nil
}
