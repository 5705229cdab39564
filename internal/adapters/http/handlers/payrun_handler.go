package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/display"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// PayrunHandler handles HTTP requests for payruns. Amounts and dates are
// rendered with the configured display Formatter.
type PayrunHandler struct {
	svc    ports.PayrunService
	format *display.Formatter
}

// NewPayrunHandler creates a new PayrunHandler.
func NewPayrunHandler(svc ports.PayrunService, format *display.Formatter) *PayrunHandler {
	return &PayrunHandler{svc: svc, format: format}
}

// ListPayruns handles GET /api/v1/payruns.
func (h *PayrunHandler) ListPayruns(w http.ResponseWriter, r *http.Request) {
	payruns, err := h.svc.ListPayruns(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPayrunListResponse(payruns, h.format))
}

// RunPayrun handles POST /api/v1/payruns.
func (h *PayrunHandler) RunPayrun(w http.ResponseWriter, r *http.Request) {
	var req dto.PayrunRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.RunPayrun(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToPayrunResponse(result, h.format))
}

// Preflight handles POST /api/v1/payruns/preflight.
func (h *PayrunHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	var req dto.PayrunRequest
	if !decodeBody(w, r, &req) {
		return
	}

	results, err := h.svc.Preflight(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPreflightResponse(results))
}
