package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/payroo-gateway/internal/app/fanout"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/payrun"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// Compile-time check that PayrunService implements ports.PayrunService.
var _ ports.PayrunService = (*PayrunService)(nil)

// MsgNoTimesheet is the field message for an employee with nothing to pay.
const MsgNoTimesheet = "has no timesheet for the period"

// PayrunService runs payruns on the backend, optionally refusing employees
// that have no timesheet for the period.
type PayrunService struct {
	client  ports.PayrollClient
	cfg     config.PayrunConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewPayrunService creates a PayrunService. metrics may be nil.
func NewPayrunService(client ports.PayrollClient, cfg *config.PayrunConfig, metrics *telemetry.Metrics, logger *slog.Logger) *PayrunService {
	return &PayrunService{client: client, cfg: *cfg, metrics: metrics, logger: orDiscard(logger)}
}

// RunPayrun validates the request and asks the backend to run it. With
// RequireTimesheets set, every employee must have a timesheet for the period.
func (s *PayrunService) RunPayrun(ctx context.Context, req *payrun.Request) (*payrun.Payrun, error) {
	if err := req.Validate(); err != nil {
		count(ctx, s.metrics, payrunCounter, 1, telemetry.AttrResult.String(telemetry.ResultRejected))
		return nil, err
	}

	if s.cfg.RequireTimesheets {
		if err := s.requireTimesheets(ctx, req); err != nil {
			count(ctx, s.metrics, payrunCounter, 1, telemetry.AttrResult.String(telemetry.ResultRejected))
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "running payrun",
		slog.String("period_start", req.PeriodStart),
		slog.String("period_end", req.PeriodEnd),
		slog.Int("employees", len(req.EmployeeIDs)),
	)

	run, err := s.client.RunPayrun(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to run payrun",
			slog.String("operation", "RunPayrun"),
			slog.Any("error", err),
		)
		count(ctx, s.metrics, payrunCounter, 1, telemetry.AttrResult.String(telemetry.ResultError))
		return nil, err
	}

	count(ctx, s.metrics, payrunCounter, 1, telemetry.AttrResult.String(telemetry.ResultSuccess))
	return run, nil
}

// ListPayruns returns completed payruns.
func (s *PayrunService) ListPayruns(ctx context.Context) ([]payrun.Payrun, error) {
	runs, err := s.client.ListPayruns(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list payruns",
			slog.String("operation", "ListPayruns"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return runs, nil
}

// Preflight looks up each employee's timesheet for the period using at most
// PreflightWorkers concurrent backend calls. Results follow the order of
// req.EmployeeIDs.
func (s *PayrunService) Preflight(ctx context.Context, req *payrun.Request) ([]payrun.Readiness, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, s.cfg.PreflightWorkers, req.EmployeeIDs,
		func(ctx context.Context, employeeID string) (string, error) {
			list, err := s.client.ListTimesheets(ctx, timesheet.Filter{
				EmployeeID:  employeeID,
				PeriodStart: req.PeriodStart,
				PeriodEnd:   req.PeriodEnd,
			})
			if err != nil || len(list) == 0 {
				return "", err
			}
			return list[0].ID, nil
		})

	readiness := make([]payrun.Readiness, len(results))
	for i, r := range results {
		readiness[i] = payrun.Readiness{
			EmployeeID:  req.EmployeeIDs[i],
			TimesheetID: r.Value,
			Ready:       r.Err == nil && r.Value != "",
			Err:         r.Err,
		}
		if r.Err != nil {
			s.logger.WarnContext(ctx, "preflight lookup failed",
				slog.String("operation", "Preflight"),
				slog.String("employee_id", req.EmployeeIDs[i]),
				slog.Any("error", r.Err),
			)
		}
	}
	return readiness, nil
}

func (s *PayrunService) requireTimesheets(ctx context.Context, req *payrun.Request) error {
	readiness, err := s.Preflight(ctx, req)
	if err != nil {
		return err
	}

	fields := make(map[string]string)
	for i, r := range readiness {
		if r.Err != nil {
			return fmt.Errorf("checking timesheet for %s: %w", r.EmployeeID, r.Err)
		}
		if !r.Ready {
			fields[fmt.Sprintf("employeeIds[%d]", i)] = MsgNoTimesheet
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
