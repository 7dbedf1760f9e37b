package enrichment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// GenerateImage renders the dream and stores the image reference on it,
// replacing any earlier image. Descriptions shorter than
// domain.MinImagePromptLength are rejected before the model is called.
func (s *Service) GenerateImage(ctx context.Context, dreamID uuid.UUID) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	d, err := s.load(ctx, userID, dreamID)
	if err != nil {
		return "", fmt.Errorf("get dream: %w", err)
	}

	prompt := strings.TrimSpace(d.Description)
	if utf8.RuneCountInString(prompt) < domain.MinImagePromptLength {
		return "", domain.NewValidationError("description",
			fmt.Sprintf("at least %d characters are needed to generate an image", domain.MinImagePromptLength))
	}

	imageURL, err := s.imager.GenerateImage(ctx, prompt)
	if err != nil {
		s.log.ErrorContext(ctx, "image generation failed",
			slog.String("user_id", userID.String()),
			slog.String("dream_id", dreamID.String()),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("generate image: %w", err)
	}
	if imageURL == "" {
		return "", fmt.Errorf("generate image: %w: no image returned", domain.ErrAI)
	}

	if _, err := s.dreams.SetImage(ctx, userID, dreamID, imageURL); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("save image: %w", err)
		}
		s.log.ErrorContext(ctx, "image not saved",
			slog.String("user_id", userID.String()),
			slog.String("dream_id", dreamID.String()),
			slog.String("error", err.Error()),
		)
		return "", domain.NewPartialSuccess("generate_image", imageURL, err)
	}

	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "dream image generated",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", dreamID.String()),
	)

	return imageURL, nil
}

// SaveImage stores an image reference the caller already holds. It accepts
// data:image/ URIs and http(s) URLs.
func (s *Service) SaveImage(ctx context.Context, dreamID uuid.UUID, imageURL string) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	imageURL = strings.TrimSpace(imageURL)
	if err := validateImageRef(imageURL); err != nil {
		return nil, err
	}

	if _, err := s.load(ctx, userID, dreamID); err != nil {
		return nil, fmt.Errorf("get dream: %w", err)
	}

	updated, err := s.dreams.SetImage(ctx, userID, dreamID, imageURL)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "image saved",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", dreamID.String()),
	)

	return updated, nil
}

func validateImageRef(ref string) error {
	if ref == "" {
		return domain.NewValidationError("imageUrl", "required")
	}
	if strings.HasPrefix(ref, "data:image/") && strings.Contains(ref, ";base64,") {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError("imageUrl", "must be a data:image/ URI or an http(s) URL")
	}
	return nil
}
