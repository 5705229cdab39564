package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/auth"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/logging"
)

const bearerPrefix = "bearer "

// Bearer returns middleware that forwards the caller's bearer token to the
// payroll backend. A token that does not decode or has already expired is
// answered with 401 and never sent. Requests without an Authorization header
// pass through unchanged and are sent with the gateway's service token.
//
// now is the clock used for the expiry check; nil means time.Now.
func Bearer(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, err := bearerToken(header)
			if err == nil {
				err = auth.CheckExpiry(token, now())
			}
			if err != nil {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "rejected inbound bearer token",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err))
				return
			}

			ctx := httpclient.WithBearerToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme is matched case-insensitively.
func bearerToken(header string) (string, error) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", auth.ErrMalformedToken
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", auth.ErrMalformedToken
	}
	return token, nil
}
