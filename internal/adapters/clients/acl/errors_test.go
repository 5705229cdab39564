package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{"400 maps to ErrValidation", http.StatusBadRequest, domain.ErrValidation},
		{"422 maps to ErrValidation", http.StatusUnprocessableEntity, domain.ErrValidation},
		{"401 maps to ErrUnauthorized", http.StatusUnauthorized, domain.ErrUnauthorized},
		{"403 maps to ErrForbidden", http.StatusForbidden, domain.ErrForbidden},
		{"404 maps to ErrNotFound", http.StatusNotFound, domain.ErrNotFound},
		{"409 maps to ErrConflict", http.StatusConflict, domain.ErrConflict},
		{"500 maps to ErrUnavailable", http.StatusInternalServerError, domain.ErrUnavailable},
		{"502 maps to ErrUnavailable", http.StatusBadGateway, domain.ErrUnavailable},
		{"503 maps to ErrUnavailable", http.StatusServiceUnavailable, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{StatusCode: tt.statusCode, Header: http.Header{}, Body: http.NoBody}

			got := TranslateHTTPError(resp)

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_UnmappedStatus(t *testing.T) {
	t.Parallel()

	resp := &http.Response{StatusCode: http.StatusTeapot, Header: http.Header{}, Body: http.NoBody}
	got := TranslateHTTPError(resp)

	for _, sentinel := range []error{
		domain.ErrValidation, domain.ErrUnauthorized, domain.ErrForbidden,
		domain.ErrNotFound, domain.ErrConflict, domain.ErrUnavailable,
	} {
		if errors.Is(got, sentinel) {
			t.Errorf("TranslateHTTPError(418) matched %v, want no sentinel", sentinel)
		}
	}
	if !strings.Contains(got.Error(), "418") {
		t.Errorf("TranslateHTTPError(418) = %q, want status code in message", got)
	}
}

func TestTranslateHTTPError_EnvelopeDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "envelope error text is kept",
			body: `{"status":false,"data":null,"error":"periodEnd must be after periodStart"}`,
			want: "periodEnd must be after periodStart",
		},
		{
			name: "non-envelope body falls back to status text",
			body: `<html>bad gateway</html>`,
			want: "Bad Request",
		},
		{
			name: "blank error falls back to status text",
			body: `{"status":false,"error":"  "}`,
			want: "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{
				StatusCode: http.StatusBadRequest,
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}

			got := TranslateHTTPError(resp)

			if !strings.Contains(got.Error(), tt.want) {
				t.Errorf("TranslateHTTPError() = %q, want it to contain %q", got, tt.want)
			}
			if !errors.Is(got, domain.ErrValidation) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is ErrValidation", got)
			}
		})
	}
}

func TestTranslateEnvelopeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  envelope
		want string
	}{
		{"backend message", envelope{Error: "Employee not active"}, "Employee not active"},
		{"missing message", envelope{}, "unknown error from backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translateEnvelopeError(&tt.env)

			if !errors.Is(got, domain.ErrValidation) {
				t.Errorf("translateEnvelopeError() = %v, want errors.Is ErrValidation", got)
			}
			if !strings.HasPrefix(got.Error(), tt.want) {
				t.Errorf("translateEnvelopeError() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}
