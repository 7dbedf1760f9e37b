package dream

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// GetByID returns one of the caller's dreams.
func (s *Service) GetByID(ctx context.Context, dreamID uuid.UUID) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.load(ctx, userID, dreamID)
}
