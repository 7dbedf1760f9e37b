package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

// profileProvider reads and writes the profile held by the identity provider.
// The access token lets hosted providers act on behalf of the caller.
type profileProvider interface {
	CurrentUser(ctx context.Context, userID uuid.UUID, accessToken string) (*domain.User, error)
	UpdateUsername(ctx context.Context, userID uuid.UUID, accessToken, username string) (*domain.User, error)
}

// Service implements user profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileProvider
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, profiles profileProvider) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		profiles: profiles,
	}
}
