// Package auth implements sign-up, sign-in and sign-out against the
// configured identity provider.
package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

// identityProvider is implemented by the Supabase and local providers.
type identityProvider interface {
	SignUp(ctx context.Context, email, password, username string) (*domain.User, *domain.Session, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	identity identityProvider
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, identity identityProvider) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		identity: identity,
	}
}

func resultFromSession(s *domain.Session) *AuthResult {
	user := s.User
	return &AuthResult{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
		User:         &user,
	}
}
