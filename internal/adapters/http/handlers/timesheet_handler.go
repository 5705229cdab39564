package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// TimesheetHandler handles HTTP requests for weekly timesheets.
type TimesheetHandler struct {
	svc ports.TimesheetService
}

// NewTimesheetHandler creates a new TimesheetHandler with the given service port.
func NewTimesheetHandler(svc ports.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{svc: svc}
}

// ListTimesheets handles GET /api/v1/timesheets.
func (h *TimesheetHandler) ListTimesheets(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListTimesheets(r.Context(), periodQuery(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTimesheetListResponse(list))
}

// LoadWeek handles GET /api/v1/timesheets/week. An unusable employee or
// period is rejected before the backend is asked.
func (h *TimesheetHandler) LoadWeek(w http.ResponseWriter, r *http.Request) {
	q := periodQuery(r)

	week, err := h.svc.LoadWeek(r.Context(), q.EmployeeID, q.PeriodStart, q.PeriodEnd)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWeekResponse(week))
}

// Validate handles POST /api/v1/timesheets/validate. Violations are data:
// the response is 200 whether or not the draft passes.
func (h *TimesheetHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.TimesheetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	violations := h.svc.ValidateDraft(r.Context(), req.ToDomain())
	writeJSON(w, http.StatusOK, dto.ToValidateResponse(violations))
}

// SaveTimesheet handles PUT /api/v1/timesheets. It answers 201 when a new
// timesheet was created and 200 when an existing one was updated.
func (h *TimesheetHandler) SaveTimesheet(w http.ResponseWriter, r *http.Request) {
	var req dto.TimesheetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.SaveTimesheet(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, dto.SaveTimesheetResponse{
		Timesheet: dto.ToTimesheetResponse(result.Timesheet),
		Created:   result.Created,
	})
}
