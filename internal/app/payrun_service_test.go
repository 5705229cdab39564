package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/payrun"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/payroo-gateway/mocks"
)

func payrunRequest(ids ...string) *payrun.Request {
	return &payrun.Request{PeriodStart: "2025-08-11", PeriodEnd: "2025-08-17", EmployeeIDs: ids}
}

func filterFor(id string) timesheet.Filter {
	return timesheet.Filter{EmployeeID: id, PeriodStart: "2025-08-11", PeriodEnd: "2025-08-17"}
}

func TestPayrunService_RunPayrun(t *testing.T) {
	t.Parallel()

	result := &payrun.Payrun{
		ID:          "pr-1",
		PeriodStart: "2025-08-11",
		PeriodEnd:   "2025-08-17",
		CreatedAt:   time.Date(2025, 8, 18, 1, 0, 0, 0, time.UTC),
		Payslips:    []payrun.Payslip{{Employee: payrun.EmployeeRef{ID: "e-1"}, Gross: 1000, Tax: 200, Net: 800, Super: 115}},
	}

	t.Run("runs without preflight by default", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		svc := NewPayrunService(client, &config.PayrunConfig{PreflightWorkers: 2}, nil, discardLogger())

		req := payrunRequest("e-1")
		client.EXPECT().RunPayrun(mock.Anything, req).Return(result, nil)

		got, err := svc.RunPayrun(context.Background(), req)
		if err != nil {
			t.Fatalf("RunPayrun() error = %v", err)
		}
		if got.ID != "pr-1" {
			t.Errorf("RunPayrun().ID = %q, want pr-1", got.ID)
		}
	})

	t.Run("invalid request", func(t *testing.T) {
		t.Parallel()
		svc := NewPayrunService(mocks.NewMockPayrollClient(t), &config.PayrunConfig{PreflightWorkers: 2}, nil, discardLogger())

		if _, err := svc.RunPayrun(context.Background(), payrunRequest()); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("RunPayrun() error = %v, want ErrValidation", err)
		}
	})

	t.Run("required timesheets missing", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		svc := NewPayrunService(client, &config.PayrunConfig{PreflightWorkers: 2, RequireTimesheets: true}, nil, discardLogger())

		client.EXPECT().ListTimesheets(mock.Anything, filterFor("e-1")).Return([]timesheet.Timesheet{{ID: "ts-1"}}, nil)
		client.EXPECT().ListTimesheets(mock.Anything, filterFor("e-2")).Return(nil, nil)

		_, err := svc.RunPayrun(context.Background(), payrunRequest("e-1", "e-2"))
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("RunPayrun() error = %v, want *ValidationError", err)
		}
		if got := verr.Fields["employeeIds[1]"]; got != MsgNoTimesheet {
			t.Errorf("Fields[employeeIds[1]] = %q, want %q", got, MsgNoTimesheet)
		}
		if _, ok := verr.Fields["employeeIds[0]"]; ok {
			t.Error("Fields has employeeIds[0], want only the missing employee")
		}
	})

	t.Run("required timesheets present", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		svc := NewPayrunService(client, &config.PayrunConfig{PreflightWorkers: 1, RequireTimesheets: true}, nil, discardLogger())

		req := payrunRequest("e-1")
		client.EXPECT().ListTimesheets(mock.Anything, filterFor("e-1")).Return([]timesheet.Timesheet{{ID: "ts-1"}}, nil)
		client.EXPECT().RunPayrun(mock.Anything, req).Return(result, nil)

		if _, err := svc.RunPayrun(context.Background(), req); err != nil {
			t.Fatalf("RunPayrun() error = %v", err)
		}
	})

	t.Run("preflight lookup failure aborts", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		svc := NewPayrunService(client, &config.PayrunConfig{PreflightWorkers: 1, RequireTimesheets: true}, nil, discardLogger())

		client.EXPECT().ListTimesheets(mock.Anything, filterFor("e-1")).Return(nil, domain.ErrUnavailable)

		if _, err := svc.RunPayrun(context.Background(), payrunRequest("e-1")); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("RunPayrun() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestPayrunService_Preflight(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockPayrollClient(t)
	svc := NewPayrunService(client, &config.PayrunConfig{PreflightWorkers: 2}, nil, discardLogger())

	client.EXPECT().ListTimesheets(mock.Anything, filterFor("e-1")).Return([]timesheet.Timesheet{{ID: "ts-1"}, {ID: "ts-x"}}, nil)
	client.EXPECT().ListTimesheets(mock.Anything, filterFor("e-2")).Return([]timesheet.Timesheet{}, nil)
	client.EXPECT().ListTimesheets(mock.Anything, filterFor("e-3")).Return(nil, domain.ErrForbidden)

	got, err := svc.Preflight(context.Background(), payrunRequest("e-1", "e-2", "e-3"))
	if err != nil {
		t.Fatalf("Preflight() error = %v", err)
	}

	want := []payrun.Readiness{
		{EmployeeID: "e-1", TimesheetID: "ts-1", Ready: true},
		{EmployeeID: "e-2"},
		{EmployeeID: "e-3", Err: domain.ErrForbidden},
	}
	if len(got) != len(want) {
		t.Fatalf("len(Preflight()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].EmployeeID != want[i].EmployeeID || got[i].TimesheetID != want[i].TimesheetID ||
			got[i].Ready != want[i].Ready || !errors.Is(got[i].Err, want[i].Err) {
			t.Errorf("Preflight()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPayrunService_ListPayruns(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockPayrollClient(t)
	svc := NewPayrunService(client, &config.PayrunConfig{PreflightWorkers: 1}, nil, discardLogger())

	client.EXPECT().ListPayruns(mock.Anything).Return(nil, domain.ErrUnauthorized)

	if _, err := svc.ListPayruns(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("ListPayruns() error = %v, want ErrUnauthorized", err)
	}
}
