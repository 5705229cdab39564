package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/payroo-gateway/internal/platform/httpclient"
)

// Requester centralizes the backend request lifecycle: URL building, JSON
// marshaling, execution via httpclient.Client, body cleanup, status and
// envelope checks, error translation, and decoding of the envelope's data.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method to path on the backend. query is appended when non-empty
// and reqBody is sent as JSON when non-nil. When respData is non-nil the
// envelope's data field is decoded into it.
//
// Non-2xx responses go through TranslateHTTPError; a 2xx response with
// status=false becomes domain.ErrValidation carrying the backend's message.
func (r *Requester) Do(ctx context.Context, method, path string, query url.Values, reqBody, respData any) error {
	target := r.client.BaseURL() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := r.newRequest(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	return r.execute(req, respData)
}

func (r *Requester) newRequest(ctx context.Context, method, target string, reqBody any) (*http.Request, error) {
	if reqBody == nil {
		return http.NewRequestWithContext(ctx, method, target, http.NoBody)
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request and unwraps the envelope. It ensures resp.Body
// is always closed.
func (r *Requester) execute(req *http.Request, respData any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Do returns both resp and err when retries are exhausted on a
		// retryable status; translate the response instead.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !success(resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if !success(resp.StatusCode) {
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	if !env.Status {
		return translateEnvelopeError(&env)
	}

	if respData != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, respData); err != nil {
			return fmt.Errorf("decoding data from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}

func success(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
