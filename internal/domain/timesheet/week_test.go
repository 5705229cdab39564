package timesheet

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

func TestNewWeek_Blank(t *testing.T) {
	t.Parallel()

	w, err := NewWeek("e-1", "2025-08-11", "2025-08-17", nil)
	if err != nil {
		t.Fatalf("NewWeek() error = %v", err)
	}
	if w.TimesheetID != "" {
		t.Errorf("TimesheetID = %q, want empty", w.TimesheetID)
	}
	if len(w.Entries) != 7 {
		t.Fatalf("len(Entries) = %d, want 7", len(w.Entries))
	}
	for i, e := range w.Entries {
		if e.StartTime != "" || e.EndTime != "" {
			t.Errorf("Entries[%d] times = %q/%q, want blank", i, e.StartTime, e.EndTime)
		}
		if e.BreakMins == nil || *e.BreakMins != 0 {
			t.Errorf("Entries[%d].BreakMins = %v, want 0", i, e.BreakMins)
		}
	}
	if w.Entries[0].Date != "2025-08-11" || w.Entries[6].Date != "2025-08-17" {
		t.Errorf("Entries dates = %s..%s, want 2025-08-11..2025-08-17", w.Entries[0].Date, w.Entries[6].Date)
	}
}

func TestNewWeek_Prefill(t *testing.T) {
	t.Parallel()

	stored := &Timesheet{
		ID:         "ts-9",
		EmployeeID: "e-1",
		Allowances: 42.5,
		Entries: []Entry{
			{Date: "2025-08-12T00:00:00.000Z", StartTime: "08:00", EndTime: "16:00", BreakMins: Float(45)},
			{Date: "2025-08-12T00:00:00.000Z", StartTime: "10:00", EndTime: "11:00", BreakMins: Float(0)},
			{Date: "2025-08-15", StartTime: "12:00", EndTime: "18:30", BreakMins: nil},
			{Date: "2025-09-01", StartTime: "07:00", EndTime: "08:00", BreakMins: Float(5)},
		},
	}

	w, err := NewWeek("e-1", "2025-08-11", "2025-08-17", stored)
	if err != nil {
		t.Fatalf("NewWeek() error = %v", err)
	}
	if w.TimesheetID != "ts-9" {
		t.Errorf("TimesheetID = %q, want ts-9", w.TimesheetID)
	}
	if w.Allowances != 42.5 {
		t.Errorf("Allowances = %v, want 42.5", w.Allowances)
	}

	tue := w.Entries[1]
	if tue.StartTime != "08:00" || tue.EndTime != "16:00" || *tue.BreakMins != 45 {
		t.Errorf("Entries[1] = %+v, want first stored entry for 2025-08-12", tue)
	}
	fri := w.Entries[4]
	if fri.StartTime != "12:00" || fri.BreakMins == nil || *fri.BreakMins != 0 {
		t.Errorf("Entries[4] = %+v, want prefilled with zero break", fri)
	}
	if w.Entries[0].StartTime != "" {
		t.Errorf("Entries[0].StartTime = %q, want blank", w.Entries[0].StartTime)
	}
}

func TestNewWeek_RejectsInvalidPeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		employeeID string
		start      string
		end        string
	}{
		{name: "no employee", employeeID: "", start: "2025-08-11", end: "2025-08-17"},
		{name: "eight days", employeeID: "e-1", start: "2025-08-11", end: "2025-08-18"},
		{name: "missing dates", employeeID: "e-1", start: "", end: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewWeek(tt.employeeID, tt.start, tt.end, nil)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("NewWeek() error = %v, want ErrValidation", err)
			}
			var verr *domain.ViolationError
			if !errors.As(err, &verr) || len(verr.Violations) != 1 || verr.Violations[0] != MsgLoadGate {
				t.Errorf("NewWeek() error = %v, want load gate message", err)
			}
		})
	}
}

func TestWeek_Draft(t *testing.T) {
	t.Parallel()

	w, err := NewWeek("e-1", "2025-08-11", "2025-08-17", &Timesheet{ID: "ts-1", Allowances: 10})
	if err != nil {
		t.Fatalf("NewWeek() error = %v", err)
	}

	d := w.Draft()
	if d.ID != "ts-1" || d.EmployeeID != "e-1" {
		t.Errorf("Draft() ids = %q/%q, want ts-1/e-1", d.ID, d.EmployeeID)
	}
	if d.Allowances == nil || *d.Allowances != 10 {
		t.Errorf("Draft().Allowances = %v, want 10", d.Allowances)
	}

	d.Entries[0].StartTime = "09:00"
	if w.Entries[0].StartTime != "" {
		t.Error("Draft() shares entries with the week")
	}

	// Blank times fail validation until filled in.
	if got := Validate(d); len(got) == 0 {
		t.Error("Validate(blank week) = none, want time format violations")
	}
}
