package enrichment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/pkg/ctxutil"
)

// Interpret analyzes the dream's description and stores the result on the
// dream, replacing any earlier interpretation.
func (s *Service) Interpret(ctx context.Context, dreamID uuid.UUID) (*domain.AIInterpretation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.load(ctx, userID, dreamID)
	if err != nil {
		return nil, fmt.Errorf("get dream: %w", err)
	}

	interp, err := s.interpreter.Interpret(ctx, d.Description)
	if err != nil {
		s.log.ErrorContext(ctx, "interpretation failed",
			slog.String("user_id", userID.String()),
			slog.String("dream_id", dreamID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("interpret dream: %w", err)
	}
	if interp == nil {
		return nil, fmt.Errorf("interpret dream: %w: empty result", domain.ErrAI)
	}
	if err := interp.Validate(); err != nil {
		return nil, fmt.Errorf("interpret dream: %w: %w", domain.ErrAI, err)
	}

	if _, err := s.dreams.SetInterpretation(ctx, userID, dreamID, *interp); err != nil {
		// Deleted meanwhile: there is nothing left to save into.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("save interpretation: %w", err)
		}
		s.log.ErrorContext(ctx, "interpretation not saved",
			slog.String("user_id", userID.String()),
			slog.String("dream_id", dreamID.String()),
			slog.String("error", err.Error()),
		)
		return nil, domain.NewPartialSuccess("interpret", interp, err)
	}

	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "dream interpreted",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", dreamID.String()),
		slog.Int("symbols", len(interp.Symbols)),
	)

	return interp, nil
}

// SaveInterpretation stores an interpretation the caller already holds,
// typically one returned with a partial success. No model is called.
func (s *Service) SaveInterpretation(ctx context.Context, dreamID uuid.UUID, interp domain.AIInterpretation) (*domain.Dream, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := interp.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.load(ctx, userID, dreamID); err != nil {
		return nil, fmt.Errorf("get dream: %w", err)
	}

	updated, err := s.dreams.SetInterpretation(ctx, userID, dreamID, interp)
	if err != nil {
		return nil, fmt.Errorf("save interpretation: %w", err)
	}

	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "interpretation saved",
		slog.String("user_id", userID.String()),
		slog.String("dream_id", dreamID.String()),
	)

	return updated, nil
}
