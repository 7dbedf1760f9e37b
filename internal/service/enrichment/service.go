// Package enrichment attaches generated interpretations and images to dreams.
//
// Each operation makes a single model call. A result that was computed but
// could not be stored is returned inside a domain.PartialSuccessError.
package enrichment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

type dreamRepo interface {
	GetByID(ctx context.Context, ownerID, dreamID uuid.UUID) (*domain.Dream, error)
	SetInterpretation(ctx context.Context, ownerID, dreamID uuid.UUID, interp domain.AIInterpretation) (*domain.Dream, error)
	SetImage(ctx context.Context, ownerID, dreamID uuid.UUID, imageURL string) (*domain.Dream, error)
}

type interpreter interface {
	Interpret(ctx context.Context, dreamText string) (*domain.AIInterpretation, error)
}

type imager interface {
	GenerateImage(ctx context.Context, dreamText string) (string, error)
}

type viewCache interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// Service runs dream enrichments.
type Service struct {
	dreams      dreamRepo
	interpreter interpreter
	imager      imager
	cache       viewCache
	log         *slog.Logger
}

// NewService creates a new enrichment service.
func NewService(
	log *slog.Logger,
	dreams dreamRepo,
	interpreter interpreter,
	imager imager,
	cache viewCache,
) *Service {
	return &Service{
		dreams:      dreams,
		interpreter: interpreter,
		imager:      imager,
		cache:       cache,
		log:         log.With("service", "enrichment"),
	}
}

// load fetches one dream and applies the same ownership gate as the dream
// service: a missing row and a foreign row are both ErrNotFound.
func (s *Service) load(ctx context.Context, ownerID, dreamID uuid.UUID) (*domain.Dream, error) {
	d, err := s.dreams.GetByID(ctx, ownerID, dreamID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.Authorize(ownerID, d.UserID); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) invalidate(ctx context.Context, ownerID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.log.WarnContext(ctx, "view cache invalidation failed",
			slog.String("user_id", ownerID.String()),
			slog.String("error", err.Error()),
		)
	}
}
