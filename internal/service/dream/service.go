// Package dream implements owner-scoped dream journal operations.
package dream

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/cache"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

type dreamRepo interface {
	List(ctx context.Context, ownerID uuid.UUID, filter domain.DreamFilter) ([]domain.Dream, error)
	GetByID(ctx context.Context, ownerID, dreamID uuid.UUID) (*domain.Dream, error)
	Create(ctx context.Context, ownerID uuid.UUID, fields domain.DreamFields) (*domain.Dream, error)
	Update(ctx context.Context, ownerID, dreamID uuid.UUID, fields domain.DreamFields) (*domain.Dream, error)
	Delete(ctx context.Context, ownerID, dreamID uuid.UUID) (bool, error)
}

type viewCache interface {
	Get(ctx context.Context, userID uuid.UUID, view string, dst any) (bool, cache.Stamp, error)
	Set(ctx context.Context, userID uuid.UUID, view string, stamp cache.Stamp, v any) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// Service provides the dream lifecycle: create, read, update and delete.
type Service struct {
	dreams dreamRepo
	cache  viewCache
	log    *slog.Logger
}

// NewService creates a new dream service.
func NewService(log *slog.Logger, dreams dreamRepo, cache viewCache) *Service {
	return &Service{
		dreams: dreams,
		cache:  cache,
		log:    log.With("service", "dream"),
	}
}

// authorize is the single ownership gate for every dream the service
// returns or mutates.
func (s *Service) authorize(ownerID uuid.UUID, d *domain.Dream) error {
	if d == nil {
		return domain.ErrNotFound
	}
	return domain.Authorize(ownerID, d.UserID)
}

// load fetches one dream and passes it through authorize.
func (s *Service) load(ctx context.Context, ownerID, dreamID uuid.UUID) (*domain.Dream, error) {
	d, err := s.dreams.GetByID(ctx, ownerID, dreamID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ownerID, d); err != nil {
		return nil, err
	}
	return d, nil
}

// invalidate drops the owner's cached views. Failures are logged only;
// the views expire on their own.
func (s *Service) invalidate(ctx context.Context, ownerID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.log.WarnContext(ctx, "view cache invalidation failed",
			slog.String("user_id", ownerID.String()),
			slog.String("error", err.Error()),
		)
	}
}
