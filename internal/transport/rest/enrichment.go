package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

type enrichmentService interface {
	Interpret(ctx context.Context, dreamID uuid.UUID) (*domain.AIInterpretation, error)
	SaveInterpretation(ctx context.Context, dreamID uuid.UUID, interp domain.AIInterpretation) (*domain.Dream, error)
	GenerateImage(ctx context.Context, dreamID uuid.UUID) (string, error)
	SaveImage(ctx context.Context, dreamID uuid.UUID, imageURL string) (*domain.Dream, error)
}

// EnrichmentHandler serves the AI interpretation and image endpoints.
type EnrichmentHandler struct {
	svc enrichmentService
	log *slog.Logger
}

// NewEnrichmentHandler creates an EnrichmentHandler.
func NewEnrichmentHandler(svc enrichmentService, logger *slog.Logger) *EnrichmentHandler {
	return &EnrichmentHandler{svc: svc, log: logger.With("handler", "enrichment")}
}

// Interpret handles POST /api/dreams/{id}/interpretation.
func (h *EnrichmentHandler) Interpret(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}
	interp, err := h.svc.Interpret(r.Context(), id)
	if err != nil {
		if writePartial(h.log, w, r, err, asIs) {
			return
		}
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, interp)
}

// SaveInterpretation handles PUT /api/dreams/{id}/interpretation, which
// stores an interpretation a client kept after a 207.
func (h *EnrichmentHandler) SaveInterpretation(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}
	var req domain.AIInterpretation
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.svc.SaveInterpretation(r.Context(), id, req)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDreamResponse(d))
}

// GenerateImage handles POST /api/dreams/{id}/image.
func (h *EnrichmentHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}
	url, err := h.svc.GenerateImage(r.Context(), id)
	if err != nil {
		if writePartial(h.log, w, r, err, asImage) {
			return
		}
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{ImageURL: url})
}

// SaveImage handles PUT /api/dreams/{id}/image.
func (h *EnrichmentHandler) SaveImage(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}
	var req imageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.svc.SaveImage(r.Context(), id, req.ImageURL)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDreamResponse(d))
}

func asIs(v any) any { return v }

func asImage(v any) any {
	if url, ok := v.(string); ok {
		return imageResponse{ImageURL: url}
	}
	return v
}
