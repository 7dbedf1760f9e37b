package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// GetProfile returns the caller's profile as the identity provider sees it.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, token, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.profiles.CurrentUser(ctx, userID, token)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return u, nil
}

// UpdateUsername stores a new display name for the caller.
func (s *Service) UpdateUsername(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, token, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.profiles.UpdateUsername(ctx, userID, token, input.Username)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUsername: %w", err)
	}

	s.log.InfoContext(ctx, "username changed", slog.String("user_id", userID.String()))
	return u, nil
}

// caller returns the authenticated user and the token it presented.
func caller(ctx context.Context) (uuid.UUID, string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	token, _ := ctxutil.AccessTokenFromCtx(ctx)
	return userID, token, nil
}
