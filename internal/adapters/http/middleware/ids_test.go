package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/middleware"
)

// captureIDs runs RequestID and CorrelationID and reports what the handler saw.
func captureIDs(t *testing.T, headers map[string]string) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()
	handler := middleware.Chain(middleware.RequestID(), middleware.CorrelationID())(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			reqID = middleware.RequestIDFromContext(r.Context())
			corrID = middleware.CorrelationIDFromContext(r.Context())
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := captureIDs(t, nil)

	parsed, err := uuid.Parse(reqID)
	if err != nil {
		t.Fatalf("request ID %q is not a UUID: %v", reqID, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", parsed.Version())
	}
	if got := rec.Header().Get("X-Request-ID"); got != reqID {
		t.Errorf("X-Request-ID header = %q, want %q", got, reqID)
	}
	if corrID != reqID {
		t.Errorf("correlation ID = %q, want request ID %q", corrID, reqID)
	}
}

func TestInboundIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		wantReqID  string
		wantCorrID string
	}{
		{
			name:       "both reused",
			headers:    map[string]string{"X-Request-ID": "req-1", "X-Correlation-ID": "corr-1"},
			wantReqID:  "req-1",
			wantCorrID: "corr-1",
		},
		{
			name:       "trimmed",
			headers:    map[string]string{"X-Request-ID": "  req-2  "},
			wantReqID:  "req-2",
			wantCorrID: "req-2",
		},
		{
			name:       "correlation falls back to request",
			headers:    map[string]string{"X-Request-ID": "req-3", "X-Correlation-ID": "   "},
			wantReqID:  "req-3",
			wantCorrID: "req-3",
		},
		{
			name:       "oversized correlation ignored",
			headers:    map[string]string{"X-Request-ID": "req-4", "X-Correlation-ID": strings.Repeat("c", 200)},
			wantReqID:  "req-4",
			wantCorrID: "req-4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reqID, corrID, rec := captureIDs(t, tt.headers)

			if reqID != tt.wantReqID {
				t.Errorf("request ID = %q, want %q", reqID, tt.wantReqID)
			}
			if corrID != tt.wantCorrID {
				t.Errorf("correlation ID = %q, want %q", corrID, tt.wantCorrID)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != tt.wantCorrID {
				t.Errorf("X-Correlation-ID header = %q, want %q", got, tt.wantCorrID)
			}
		})
	}
}

func TestRequestID_RejectsControlCharacters(t *testing.T) {
	t.Parallel()

	reqID, _, _ := captureIDs(t, map[string]string{"X-Request-ID": "bad\x01id"})

	if reqID == "bad\x01id" {
		t.Fatal("request ID reused a value with control characters")
	}
	if _, err := uuid.Parse(reqID); err != nil {
		t.Errorf("request ID %q is not a generated UUID", reqID)
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	if got := middleware.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
	if got := middleware.CorrelationIDFromContext(context.Background()); got != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", got)
	}
}
