package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// Logout ends the caller's provider session.
// Returns ErrUnauthorized if the context carries no authenticated user.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	token, ok := ctxutil.AccessTokenFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.identity.SignOut(ctx, token); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}
