package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// SessionHandler exchanges a console user's name for a backend token.
type SessionHandler struct {
	svc ports.SessionService
}

// NewSessionHandler creates a new SessionHandler with the given service port.
func NewSessionHandler(svc ports.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// IssueToken handles POST /api/v1/session/token.
func (h *SessionHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.svc.IssueToken(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}
