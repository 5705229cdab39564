package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{"ErrNotFound maps to 404", domain.ErrNotFound, http.StatusNotFound, "Not Found"},
		{
			"ErrValidation maps to 400",
			&domain.ValidationError{Fields: map[string]string{"name": "is required"}},
			http.StatusBadRequest, "Bad Request",
		},
		{
			"ViolationError maps to 400",
			&domain.ViolationError{Violations: []string{timesheet.MsgEmployeeRequired}},
			http.StatusBadRequest, "Bad Request",
		},
		{"ErrUnauthorized maps to 401", domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"ErrConflict maps to 409", domain.ErrConflict, http.StatusConflict, "Conflict"},
		{"ErrForbidden maps to 403", domain.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"ErrUnavailable maps to 502", domain.ErrUnavailable, http.StatusBadGateway, "Bad Gateway"},
		{"deadline maps to 504", context.DeadlineExceeded, http.StatusGatewayTimeout, "Gateway Timeout"},
		{"unknown error maps to 500", errors.New("oops"), http.StatusInternalServerError, "Internal Server Error"},
		{
			"wrapped ErrNotFound preserves mapping",
			fmt.Errorf("updating employee: %w", domain.ErrNotFound),
			http.StatusNotFound, "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/payruns", nil)
	err := domain.ErrNotFound

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/payruns" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/payruns")
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"firstName": "is required",
		"bank.bsb":  "is required",
		"email":     "email must be a valid email address",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/employees", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}
	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location >= got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q >= %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}
	for _, detail := range got.Errors {
		if !strings.HasPrefix(detail.Location, "body.") {
			t.Errorf("Location %q does not start with %q", detail.Location, "body.")
		}
	}
}

func TestNewErrorResponse_ViolationsKeepOrder(t *testing.T) {
	t.Parallel()

	violations := []string{
		timesheet.MsgEmployeeRequired,
		"Entry 2: Start time must be in HH:mm format.",
		timesheet.MsgAllowancesNegative,
		timesheet.MsgNotSevenDays,
	}
	r := httptest.NewRequest(http.MethodPut, "/api/v1/timesheets", nil)
	got := dto.NewErrorResponse(r, fmt.Errorf("saving: %w", &domain.ViolationError{Violations: violations}))

	if len(got.Errors) != len(violations) {
		t.Fatalf("len(Errors) = %d, want %d", len(got.Errors), len(violations))
	}
	for i, want := range violations {
		if got.Errors[i].Message != want || got.Errors[i].Location != "body" {
			t.Errorf("Errors[%d] = %+v, want {body %q}", i, got.Errors[i], want)
		}
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/session/token", nil)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"name": "is required"}})

	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(resp.Errors))
	}
	if resp.Errors[0].Location != "body.name" || resp.Errors[0].Message != "is required" {
		t.Errorf("Errors[0] = %+v, want {body.name is required}", resp.Errors[0])
	}
}
