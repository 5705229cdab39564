package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
	"github.com/jsamuelsen11/payroo-gateway/mocks"
)

const draftBody = `{
	"employeeId": "e-1",
	"periodStart": "2025-08-11",
	"periodEnd": "2025-08-17",
	"allowances": "30",
	"entries": [{"date": "2025-08-11", "startTime": "09:00", "endTime": "17:30", "breakMins": 30}]
}`

func newTimesheetHandler(t *testing.T) (*handlers.TimesheetHandler, *mocks.MockTimesheetService) {
	t.Helper()
	svc := mocks.NewMockTimesheetService(t)
	return handlers.NewTimesheetHandler(svc), svc
}

func storedTimesheet() *timesheet.Timesheet {
	return &timesheet.Timesheet{
		ID:          "ts-1",
		EmployeeID:  "e-1",
		PeriodStart: "2025-08-11",
		PeriodEnd:   "2025-08-17",
		Allowances:  30,
		Entries: []timesheet.Entry{
			{Date: "2025-08-11", StartTime: "09:00", EndTime: "17:30", BreakMins: timesheet.Float(30)},
		},
	}
}

// --- ListTimesheets ---

func TestListTimesheets_PassesFilter(t *testing.T) {
	t.Parallel()
	h, svc := newTimesheetHandler(t)

	want := timesheet.Filter{EmployeeID: "e-1", PeriodStart: "2025-08-11"}
	svc.EXPECT().ListTimesheets(mock.Anything, want).Return([]timesheet.Timesheet{*storedTimesheet()}, nil)

	rec := httptest.NewRecorder()
	h.ListTimesheets(rec, httptest.NewRequest(http.MethodGet, "/api/v1/timesheets?employeeId=e-1&periodStart=2025-08-11", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[dto.TimesheetListResponse](t, rec).Count; got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}

// --- LoadWeek ---

func TestLoadWeek(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h, svc := newTimesheetHandler(t)

		week := &timesheet.Week{
			TimesheetID: "ts-1", EmployeeID: "e-1", PeriodStart: "2025-08-11", PeriodEnd: "2025-08-17",
			Entries: make([]timesheet.Entry, 7),
		}
		svc.EXPECT().LoadWeek(mock.Anything, "e-1", "2025-08-11", "2025-08-17").Return(week, nil)

		rec := httptest.NewRecorder()
		h.LoadWeek(rec, httptest.NewRequest(http.MethodGet,
			"/api/v1/timesheets/week?employeeId=e-1&periodStart=2025-08-11&periodEnd=2025-08-17", nil))

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.WeekResponse](t, rec)
		if resp.TimesheetID != "ts-1" || len(resp.Entries) != 7 {
			t.Errorf("response = %+v, want ts-1 with 7 entries", resp)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		t.Parallel()
		h, svc := newTimesheetHandler(t)

		svc.EXPECT().LoadWeek(mock.Anything, "e-1", "2025-08-11", "2025-08-12").
			Return(nil, &domain.ViolationError{Violations: []string{timesheet.MsgNotSevenDays}})

		rec := httptest.NewRecorder()
		h.LoadWeek(rec, httptest.NewRequest(http.MethodGet,
			"/api/v1/timesheets/week?employeeId=e-1&periodStart=2025-08-11&periodEnd=2025-08-12", nil))

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

// --- Validate ---

func TestValidate_AlwaysOK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		violations []string
		wantValid  bool
	}{
		{"valid draft", nil, true},
		{"violations", []string{timesheet.MsgAllowancesNegative}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTimesheetHandler(t)

			svc.EXPECT().ValidateDraft(mock.Anything, mock.MatchedBy(func(d *timesheet.Draft) bool {
				return d.Allowances != nil && *d.Allowances == 30 &&
					len(d.Entries) == 1 && d.Entries[0].BreakMins != nil && *d.Entries[0].BreakMins == 30
			})).Return(tt.violations)

			rec := httptest.NewRecorder()
			h.Validate(rec, httptest.NewRequest(http.MethodPost, "/api/v1/timesheets/validate", rawBody(draftBody)))

			requireStatus(t, rec, http.StatusOK)
			resp := decodeJSON[dto.ValidateResponse](t, rec)
			if resp.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", resp.Valid, tt.wantValid)
			}
			if resp.Violations == nil {
				t.Error("Violations = nil, want a JSON array")
			}
		})
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTimesheetHandler(t)

	rec := httptest.NewRecorder()
	h.Validate(rec, httptest.NewRequest(http.MethodPost, "/api/v1/timesheets/validate", rawBody(`{"entries":`)))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- SaveTimesheet ---

func TestSaveTimesheet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   *ports.SaveResult
		err      error
		wantCode int
	}{
		{"created", &ports.SaveResult{Timesheet: storedTimesheet(), Created: true}, nil, http.StatusCreated},
		{"updated", &ports.SaveResult{Timesheet: storedTimesheet()}, nil, http.StatusOK},
		{"backend down", nil, domain.ErrUnavailable, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTimesheetHandler(t)

			svc.EXPECT().SaveTimesheet(mock.Anything, mock.Anything).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			h.SaveTimesheet(rec, httptest.NewRequest(http.MethodPut, "/api/v1/timesheets", rawBody(draftBody)))

			requireStatus(t, rec, tt.wantCode)
			if tt.result != nil {
				resp := decodeJSON[dto.SaveTimesheetResponse](t, rec)
				if resp.Timesheet.ID != "ts-1" || resp.Created != tt.result.Created {
					t.Errorf("response = %+v, want ts-1 created=%v", resp, tt.result.Created)
				}
			}
		})
	}
}

func TestSaveTimesheet_ViolationsKeepOrder(t *testing.T) {
	t.Parallel()
	h, svc := newTimesheetHandler(t)

	violations := []string{
		timesheet.MsgNotSevenDays,
		"Entry 1: End time must be after start time.",
		timesheet.MsgAllowancesNegative,
	}
	svc.EXPECT().SaveTimesheet(mock.Anything, mock.Anything).
		Return(nil, &domain.ViolationError{Violations: violations})

	rec := httptest.NewRecorder()
	h.SaveTimesheet(rec, httptest.NewRequest(http.MethodPut, "/api/v1/timesheets", rawBody(draftBody)))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != len(violations) {
		t.Fatalf("len(Errors) = %d, want %d", len(resp.Errors), len(violations))
	}
	for i, want := range violations {
		if resp.Errors[i].Message != want {
			t.Errorf("Errors[%d].Message = %q, want %q", i, resp.Errors[i].Message, want)
		}
	}
}
