package dream

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// Update replaces the editable fields of one of the caller's dreams.
// Enrichment results are left untouched.
func (s *Service) Update(ctx context.Context, dreamID uuid.UUID, input DreamInput) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields, err := input.normalize()
	if err != nil {
		return nil, err
	}

	if _, err := s.load(ctx, userID, dreamID); err != nil {
		return nil, fmt.Errorf("get dream: %w", err)
	}

	updated, err := s.dreams.Update(ctx, userID, dreamID, fields)
	if err != nil {
		return nil, fmt.Errorf("update dream: %w", err)
	}

	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "dream updated",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", dreamID.String()),
	)

	return updated, nil
}
