package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/display"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validEmployee() employee.Employee {
	return employee.Employee{
		ID:             "e-1",
		FirstName:      "Alice",
		LastName:       "Chen",
		Email:          "alice@example.com",
		Type:           employee.TypeHourly,
		BaseHourlyRate: 35,
		SuperRate:      11.5,
		Bank:           employee.Bank{BSB: "083-123", Account: "12345678"},
		Status:         employee.StatusActive,
	}
}

func newFormatter(t *testing.T) *display.Formatter {
	t.Helper()
	f, err := display.New(&config.DisplayConfig{Locale: "en-AU", Timezone: "Australia/Melbourne"})
	if err != nil {
		t.Fatalf("display.New() error = %v", err)
	}
	return f
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
