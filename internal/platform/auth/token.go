// Package auth decodes payroll backend bearer tokens and keeps the gateway's
// own service token fresh.
//
// Tokens are issued and verified by the payroll backend. This package never
// checks signatures; it reads the exp claim so that a token known to be
// expired is dropped before it is sent.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/payroo-gateway/internal/platform/config"
)

// Token decoding errors.
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrNoExpiry       = errors.New("token has no exp claim")
	ErrExpiredToken   = errors.New("token expired")
)

// Expiry decodes token without verifying its signature and returns its exp
// claim.
func Expiry(token string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// CheckExpiry returns nil when token decodes and expires after now.
func CheckExpiry(token string, now time.Time) error {
	exp, err := Expiry(token)
	if err != nil {
		return err
	}
	if !exp.After(now) {
		return fmt.Errorf("%w at %s", ErrExpiredToken, exp.UTC().Format(time.RFC3339))
	}
	return nil
}

// Issuer obtains a new bearer token for a principal.
type Issuer interface {
	IssueToken(ctx context.Context, name string) (string, error)
}

// TokenProvider caches the gateway's service token and refreshes it shortly
// before it expires. It is safe for concurrent use; concurrent callers share
// a single refresh.
type TokenProvider struct {
	issuer    Issuer
	principal string
	skew      time.Duration
	now       func() time.Time
	logger    *slog.Logger

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewTokenProvider creates a TokenProvider that issues tokens for
// cfg.Principal and refreshes them cfg.RefreshSkew before exp.
func NewTokenProvider(issuer Issuer, cfg *config.AuthConfig, logger *slog.Logger) *TokenProvider {
	return &TokenProvider{
		issuer:    issuer,
		principal: cfg.Principal,
		skew:      cfg.RefreshSkew,
		now:       time.Now,
		logger:    logger,
	}
}

// Token returns the cached token, or issues a new one when none is cached or
// the cached one is within the refresh skew of expiring.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.now().Add(p.skew).Before(p.expires) {
		return p.token, nil
	}

	token, err := p.issuer.IssueToken(ctx, p.principal)
	if err != nil {
		return "", fmt.Errorf("issuing token for %s: %w", p.principal, err)
	}
	exp, err := Expiry(token)
	if err != nil {
		return "", fmt.Errorf("decoding issued token: %w", err)
	}

	p.token = token
	p.expires = exp
	p.logger.DebugContext(ctx, "service token refreshed",
		slog.String("principal", p.principal),
		slog.Time("expires_at", exp),
	)
	return token, nil
}

// Invalidate drops the cached token if it is the one given. A stale caller
// reporting an old token does not discard a newer one.
func (p *TokenProvider) Invalidate(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token == token {
		p.token = ""
		p.expires = time.Time{}
	}
}
