package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
)

// pathID extracts a non-blank path parameter from the chi URL params.
// Backend ids are opaque strings.
func pathID(r *http.Request, param string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, param))
	if id == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{param: domain.MsgRequired},
		}
	}
	return id, nil
}

// periodQuery reads employeeId, periodStart and periodEnd from the query
// string. Missing values are left empty for the caller's rules to judge.
func periodQuery(r *http.Request) timesheet.Filter {
	q := r.URL.Query()
	return timesheet.Filter{
		EmployeeID:  strings.TrimSpace(q.Get("employeeId")),
		PeriodStart: strings.TrimSpace(q.Get("periodStart")),
		PeriodEnd:   strings.TrimSpace(q.Get("periodEnd")),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// A week of entries is well under this; larger bodies are refused.
const maxBodyBytes = 1 << 20

// decodeBody reads a JSON body into dst, answering 400 and returning false
// when the body is oversized or not JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return true
	}
	msg := "invalid JSON"
	if tooLarge := new(http.MaxBytesError); errors.As(err, &tooLarge) {
		msg = "body too large"
	}
	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
	return false
}

type validatable interface {
	Validate() error
}

// decodeAndValidate is decodeBody followed by dst.Validate.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
