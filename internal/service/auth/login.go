package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

// Login signs a user in with email and password. Every credential failure
// is reported as domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.identity.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "login rejected")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", session.User.ID.String()))
	return resultFromSession(session), nil
}
