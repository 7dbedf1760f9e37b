package dream

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/cache"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// List returns the caller's most recent dreams, newest first. A non-empty
// query narrows the result to dreams whose title or description contains it.
// Only the unfiltered page is cached.
func (s *Service) List(ctx context.Context, query string) ([]domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	query = strings.TrimSpace(query)
	cacheable := query == ""

	var stamp cache.Stamp
	if cacheable {
		var cached []domain.Dream
		hit, st, err := s.cache.Get(ctx, userID, cache.ViewDreamList, &cached)
		if err != nil {
			s.log.WarnContext(ctx, "view cache read failed", slog.String("error", err.Error()))
		}
		stamp = st
		if hit {
			return s.visible(userID, cached), nil
		}
	}

	dreams, err := s.dreams.List(ctx, userID, domain.DreamFilter{
		Query: query,
		Limit: domain.DefaultDreamListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list dreams: %w", err)
	}
	dreams = s.visible(userID, dreams)

	if cacheable {
		if err := s.cache.Set(ctx, userID, cache.ViewDreamList, stamp, dreams); err != nil {
			s.log.WarnContext(ctx, "view cache write failed", slog.String("error", err.Error()))
		}
	}

	return dreams, nil
}

// visible keeps only the dreams that pass authorize.
func (s *Service) visible(ownerID uuid.UUID, dreams []domain.Dream) []domain.Dream {
	out := make([]domain.Dream, 0, len(dreams))
	for i := range dreams {
		if s.authorize(ownerID, &dreams[i]) == nil {
			out = append(out, dreams[i])
		}
	}
	return out
}
