package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/logging"
)

// jitterFraction spreads each computed delay by up to ±25%.
const jitterFraction = 0.25

// retryPolicy is the backoff schedule for one client.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	ceiling     time.Duration
	multiplier  float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.InitialInterval,
		ceiling:     cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
	}
}

// delay returns the wait before the given retry (1 is the first retry). A
// positive hint from Retry-After replaces the exponential schedule but is
// still capped at the ceiling.
func (p retryPolicy) delay(retry int, hint time.Duration) time.Duration {
	if hint > 0 {
		return min(hint, p.ceiling)
	}

	d := float64(p.initial) * math.Pow(p.multiplier, float64(retry-1))
	d = min(d, float64(p.ceiling))
	d += d * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter, not a secret
	return time.Duration(max(d, 0))
}

// sendWithRetry runs req until it succeeds, fails permanently, or the policy
// runs out of attempts. When the final answer is a failing status the
// response is returned with its body unread alongside the error, so the
// caller can translate the backend's error envelope.
func (c *Client) sendWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.maxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}
	if err := makeReplayable(req); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		resp, err := c.httpClient.Do(req)
		if attempt >= c.retry.maxAttempts || !shouldRetry(req.Method, resp, err) {
			return resp, c.outcome(resp, err)
		}

		wait := c.retry.delay(attempt, retryAfter(resp, time.Now()))
		c.logRetry(ctx, req, attempt+1, wait, c.outcome(resp, err))
		if resp != nil {
			drain(resp)
		}

		if err := sleep(ctx, wait); err != nil {
			return nil, err
		}
		if err := rewind(req); err != nil {
			return nil, err
		}
	}
}

// outcome turns an attempt into the error reported to the circuit breaker.
func (c *Client) outcome(resp *http.Response, err error) error {
	if err != nil {
		return err
	}
	if failedStatus(resp.StatusCode) {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
	}
	return nil
}

func (c *Client) logRetry(ctx context.Context, req *http.Request, next int, wait time.Duration, cause error) {
	logging.FromContext(ctx).WarnContext(ctx, "retrying backend request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", next),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)
}

// shouldRetry classifies one attempt. Requests the backend may already have
// acted on (a POST that timed out, a payrun that answered 500) are only
// retried when the backend said it did nothing: 429, 503, or a failed dial.
func shouldRetry(method string, resp *http.Response, err error) bool {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		return idempotent(method) || dialFailed(err)
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return true
	}
	return resp.StatusCode >= http.StatusInternalServerError && idempotent(method)
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func dialFailed(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// failedStatus reports statuses that count against the circuit breaker.
func failedStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// retryAfter reads the backend's Retry-After hint in either delta-seconds or
// HTTP-date form. It returns 0 when there is no usable hint.
func retryAfter(resp *http.Response, now time.Time) time.Duration {
	if resp == nil {
		return 0
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// makeReplayable ensures req.GetBody is set so every attempt can resend the
// same payload. Bodies built from bytes or strings already have one.
func makeReplayable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}

	buf, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	req.ContentLength = int64(len(buf))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	req.Body, _ = req.GetBody()
	return nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// drain discards a response that is about to be retried so the connection
// can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
