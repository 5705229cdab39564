// Package acl implements the Anti-Corruption Layer between the payroll
// backend's wire format and domain types. Resource translators live in
// subpackages (acl/employee, acl/timesheet, acl/payrun); the envelope,
// request lifecycle, and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// envelope is the wrapper around every backend response body.
type envelope struct {
	Status bool            `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

// TranslateHTTPError maps a non-2xx backend response to a domain error. The
// envelope's error text, when present, is kept as the error detail.
func TranslateHTTPError(resp *http.Response) error {
	detail := readErrorText(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnauthorized)
	case code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// translateEnvelopeError maps a 2xx response whose envelope reports
// status=false. The backend uses this for rejected input.
func translateEnvelopeError(env *envelope) error {
	detail := strings.TrimSpace(env.Error)
	if detail == "" {
		detail = "unknown error from backend"
	}
	return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
}

// readErrorText returns the envelope error text of an error response, or ""
// when the body is missing or not an envelope.
func readErrorText(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return strings.TrimSpace(env.Error)
}
