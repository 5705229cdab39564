// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/ports"
)

// Compile-time check that SessionService implements ports.SessionService.
var _ ports.SessionService = (*SessionService)(nil)

// SessionService issues backend tokens for console users.
type SessionService struct {
	client ports.PayrollClient
	logger *slog.Logger
}

// NewSessionService creates a SessionService. A nil logger discards output.
func NewSessionService(client ports.PayrollClient, logger *slog.Logger) *SessionService {
	return &SessionService{client: client, logger: orDiscard(logger)}
}

// IssueToken returns a backend token for the named user.
func (s *SessionService) IssueToken(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}

	s.logger.InfoContext(ctx, "issuing session token")

	token, err := s.client.IssueToken(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue session token",
			slog.String("operation", "IssueToken"),
			slog.Any("error", err),
		)
		return "", err
	}
	return token, nil
}

// orDiscard returns logger, or a logger that drops everything when nil.
func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
