// Package dashboard builds the per-user journal overview.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/cache"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

const (
	recentDreams = 5
	topEmotions  = 5
)

type dreamRepo interface {
	List(ctx context.Context, ownerID uuid.UUID, filter domain.DreamFilter) ([]domain.Dream, error)
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
	TopEmotions(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.EmotionCount, error)
}

type viewCache interface {
	Get(ctx context.Context, userID uuid.UUID, view string, dst any) (bool, cache.Stamp, error)
	Set(ctx context.Context, userID uuid.UUID, view string, stamp cache.Stamp, v any) error
}

// Service assembles dashboards.
type Service struct {
	dreams dreamRepo
	cache  viewCache
	log    *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(log *slog.Logger, dreams dreamRepo, cache viewCache) *Service {
	return &Service{
		dreams: dreams,
		cache:  cache,
		log:    log.With("service", "dashboard"),
	}
}

// Get returns the caller's dashboard: the latest dreams, the most frequent
// emotions and the total number of dreams.
func (s *Service) Get(ctx context.Context) (*domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var cached domain.Dashboard
	hit, stamp, err := s.cache.Get(ctx, userID, cache.ViewDashboard, &cached)
	if err != nil {
		s.log.WarnContext(ctx, "view cache read failed", slog.String("error", err.Error()))
	}
	if hit {
		return &cached, nil
	}

	recent, err := s.dreams.List(ctx, userID, domain.DreamFilter{Limit: recentDreams})
	if err != nil {
		return nil, fmt.Errorf("recent dreams: %w", err)
	}

	total, err := s.dreams.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count dreams: %w", err)
	}

	emotions, err := s.dreams.TopEmotions(ctx, userID, topEmotions)
	if err != nil {
		return nil, fmt.Errorf("top emotions: %w", err)
	}

	dash := &domain.Dashboard{
		TotalDreams:  total,
		RecentDreams: ownedBy(userID, recent),
		TopEmotions:  emotions,
	}

	if err := s.cache.Set(ctx, userID, cache.ViewDashboard, stamp, dash); err != nil {
		s.log.WarnContext(ctx, "view cache write failed", slog.String("error", err.Error()))
	}

	return dash, nil
}

func ownedBy(ownerID uuid.UUID, dreams []domain.Dream) []domain.Dream {
	out := make([]domain.Dream, 0, len(dreams))
	for _, d := range dreams {
		if domain.Authorize(ownerID, d.UserID) == nil {
			out = append(out, d)
		}
	}
	return out
}
