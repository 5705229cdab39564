package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/payroo-gateway/internal/app/context"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// Compile-time check that TimesheetService implements ports.TimesheetService.
var _ ports.TimesheetService = (*TimesheetService)(nil)

// TimesheetService runs the timesheet rules and moves drafts to and from the
// payroll backend.
type TimesheetService struct {
	client  ports.PayrollClient
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewTimesheetService creates a TimesheetService. metrics may be nil.
func NewTimesheetService(client ports.PayrollClient, metrics *telemetry.Metrics, logger *slog.Logger) *TimesheetService {
	return &TimesheetService{client: client, metrics: metrics, logger: orDiscard(logger)}
}

// ValidateDraft returns the rule violations for a draft in order.
func (s *TimesheetService) ValidateDraft(ctx context.Context, draft *timesheet.Draft) []string {
	violations := timesheet.Validate(*draft)
	count(ctx, s.metrics, violationCounter, int64(len(violations)),
		telemetry.AttrOperation.String("validate"))
	return violations
}

// ListTimesheets returns stored timesheets matching the filter.
func (s *TimesheetService) ListTimesheets(ctx context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error) {
	list, err := s.client.ListTimesheets(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list timesheets",
			slog.String("operation", "ListTimesheets"),
			slog.String("employee_id", filter.EmployeeID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return list, nil
}

// LoadWeek returns the editable week for an employee and period. The period
// is checked before the backend is asked for anything. Only the first stored
// timesheet returned for the period is used.
func (s *TimesheetService) LoadWeek(ctx context.Context, employeeID, periodStart, periodEnd string) (*timesheet.Week, error) {
	if _, err := timesheet.NewWeek(employeeID, periodStart, periodEnd, nil); err != nil {
		return nil, err
	}

	stored, err := s.stored(requestContext(ctx), employeeID, periodStart, periodEnd)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load timesheet",
			slog.String("operation", "LoadWeek"),
			slog.String("employee_id", employeeID),
			slog.Any("error", err),
		)
		return nil, err
	}

	week, err := timesheet.NewWeek(employeeID, periodStart, periodEnd, stored)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "loaded timesheet week",
		slog.String("week", week.String()),
		slog.Bool("prefilled", stored != nil),
	)
	return &week, nil
}

// SaveTimesheet checks the submission rules, then creates the timesheet or
// updates the stored one. A draft without an ID updates the timesheet already
// stored for its employee and period, if any.
func (s *TimesheetService) SaveTimesheet(ctx context.Context, draft *timesheet.Draft) (*ports.SaveResult, error) {
	if err := timesheet.Check(*draft); err != nil {
		var verr *domain.ViolationError
		if errors.As(err, &verr) {
			count(ctx, s.metrics, violationCounter, int64(len(verr.Violations)),
				telemetry.AttrOperation.String("save"))
		}
		count(ctx, s.metrics, submitCounter, 1, telemetry.AttrResult.String(telemetry.ResultRejected))
		return nil, err
	}

	rc := requestContext(ctx)
	previous, err := s.stored(rc, draft.EmployeeID, draft.PeriodStart, draft.PeriodEnd)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to look up stored timesheet",
			slog.String("operation", "SaveTimesheet"),
			slog.String("employee_id", draft.EmployeeID),
			slog.Any("error", err),
		)
		count(ctx, s.metrics, submitCounter, 1, telemetry.AttrResult.String(telemetry.ResultError))
		return nil, err
	}

	id := draft.ID
	if id == "" && previous != nil {
		id = previous.ID
	}
	if previous != nil && previous.ID != id {
		previous = nil
	}

	action := &saveTimesheet{client: s.client, id: id, draft: draft, previous: previous}
	if err := rc.Stage(storedKey(draft.EmployeeID, draft.PeriodStart, draft.PeriodEnd), project(id, draft), action); err != nil {
		return nil, fmt.Errorf("staging timesheet save: %w", err)
	}

	if err := rc.Commit(ctx); err != nil {
		count(ctx, s.metrics, submitCounter, 1, telemetry.AttrResult.String(telemetry.ResultError))
		return nil, err
	}

	count(ctx, s.metrics, submitCounter, 1, telemetry.AttrResult.String(telemetry.ResultSuccess))
	s.logger.InfoContext(ctx, "saved timesheet",
		slog.String("timesheet_id", action.result.ID),
		slog.String("employee_id", draft.EmployeeID),
		slog.Bool("created", id == ""),
	)
	return &ports.SaveResult{Timesheet: action.result, Created: id == ""}, nil
}

// stored returns the first timesheet stored for the employee and period, or
// nil. Within a request the lookup is memoized.
func (s *TimesheetService) stored(rc *appctx.RequestContext, employeeID, periodStart, periodEnd string) (*timesheet.Timesheet, error) {
	return appctx.GetOrFetch(rc, storedKey(employeeID, periodStart, periodEnd),
		func(ctx context.Context) (*timesheet.Timesheet, error) {
			list, err := s.client.ListTimesheets(ctx, timesheet.Filter{
				EmployeeID:  employeeID,
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
			})
			if err != nil || len(list) == 0 {
				return nil, err
			}
			return &list[0], nil
		})
}

// requestContext returns the request's RequestContext, or a fresh one when
// the caller has none (the CLI and tests).
func requestContext(ctx context.Context) *appctx.RequestContext {
	if rc := appctx.FromContext(ctx); rc != nil {
		return rc
	}
	return appctx.New(ctx)
}

func storedKey(employeeID, periodStart, periodEnd string) string {
	return "timesheet:" + employeeID + ":" + periodStart + ":" + periodEnd
}

// project is the timesheet the backend will hold once draft is saved.
func project(id string, draft *timesheet.Draft) *timesheet.Timesheet {
	ts := &timesheet.Timesheet{
		ID:          id,
		EmployeeID:  draft.EmployeeID,
		PeriodStart: draft.PeriodStart,
		PeriodEnd:   draft.PeriodEnd,
		Entries:     draft.Entries,
	}
	if draft.Allowances != nil {
		ts.Allowances = *draft.Allowances
	}
	return ts
}

// saveTimesheet creates a timesheet when id is empty and updates it
// otherwise. An update rolls back by writing previous back.
type saveTimesheet struct {
	client   ports.PayrollClient
	id       string
	draft    *timesheet.Draft
	previous *timesheet.Timesheet
	result   *timesheet.Timesheet
}

func (a *saveTimesheet) Execute(ctx context.Context) error {
	var err error
	if a.id == "" {
		a.result, err = a.client.CreateTimesheet(ctx, a.draft)
	} else {
		a.result, err = a.client.UpdateTimesheet(ctx, a.id, a.draft)
	}
	return err
}

// Rollback restores the previous timesheet. The backend cannot delete
// timesheets, so a create is left in place.
func (a *saveTimesheet) Rollback(ctx context.Context) error {
	if a.id == "" || a.previous == nil {
		return nil
	}
	allowances := a.previous.Allowances
	_, err := a.client.UpdateTimesheet(ctx, a.id, &timesheet.Draft{
		ID:          a.id,
		EmployeeID:  a.previous.EmployeeID,
		PeriodStart: a.previous.PeriodStart,
		PeriodEnd:   a.previous.PeriodEnd,
		Entries:     a.previous.Entries,
		Allowances:  &allowances,
	})
	return err
}

func (a *saveTimesheet) Description() string {
	if a.id == "" {
		return "create timesheet for " + a.draft.EmployeeID
	}
	return "update timesheet " + a.id
}
