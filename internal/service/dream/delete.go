package dream

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// Delete removes one of the caller's dreams. Deleting a dream that is
// already gone reports domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, dreamID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.load(ctx, userID, dreamID); err != nil {
		return fmt.Errorf("get dream: %w", err)
	}

	deleted, err := s.dreams.Delete(ctx, userID, dreamID)
	if err != nil {
		return fmt.Errorf("delete dream: %w", err)
	}
	if !deleted {
		// Removed concurrently between the read and the delete.
		return fmt.Errorf("delete dream %s: %w", dreamID, domain.ErrNotFound)
	}

	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "dream deleted",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", dreamID.String()),
	)

	return nil
}
