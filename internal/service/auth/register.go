package auth

import (
	"context"
	"fmt"
	"log/slog"
)

// Register creates an account and, unless the provider asks for email
// confirmation first, signs the user in.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, session, err := s.identity.SignUp(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	if session == nil {
		s.log.InfoContext(ctx, "user registered, confirmation pending", slog.String("user_id", user.ID.String()))
		return &AuthResult{User: user, ConfirmationRequired: true}, nil
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return resultFromSession(session), nil
}
