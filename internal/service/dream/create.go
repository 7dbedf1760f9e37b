package dream

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// Create validates the input and stores a new dream for the caller.
func (s *Service) Create(ctx context.Context, input DreamInput) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields, err := input.normalize()
	if err != nil {
		return nil, err
	}

	created, err := s.dreams.Create(ctx, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("create dream: %w", err)
	}
	if err := s.authorize(userID, created); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "dream created",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", created.ID.String()),
	)

	return created, nil
}
