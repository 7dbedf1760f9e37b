package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/dream"
)

type dreamService interface {
	List(ctx context.Context, query string) ([]domain.Dream, error)
	GetByID(ctx context.Context, dreamID uuid.UUID) (*domain.Dream, error)
	Create(ctx context.Context, input dream.DreamInput) (*domain.Dream, error)
	Update(ctx context.Context, dreamID uuid.UUID, input dream.DreamInput) (*domain.Dream, error)
	Delete(ctx context.Context, dreamID uuid.UUID) error
}

// DreamHandler serves the dream journal CRUD endpoints.
type DreamHandler struct {
	svc dreamService
	log *slog.Logger
}

// NewDreamHandler creates a DreamHandler.
func NewDreamHandler(svc dreamService, logger *slog.Logger) *DreamHandler {
	return &DreamHandler{svc: svc, log: logger.With("handler", "dreams")}
}

// List handles GET /api/dreams?q=.
func (h *DreamHandler) List(w http.ResponseWriter, r *http.Request) {
	dreams, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDreamResponses(dreams))
}

// Get handles GET /api/dreams/{id}.
func (h *DreamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}
	d, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDreamResponse(d))
}

// Create handles POST /api/dreams.
func (h *DreamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dreamRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDreamResponse(d))
}

// Update handles PUT /api/dreams/{id}.
func (h *DreamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}
	var req dreamRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDreamResponse(d))
}

// Delete handles DELETE /api/dreams/{id}.
func (h *DreamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := dreamID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// dreamID parses the {id} path parameter. A malformed id cannot name an
// existing dream, so it is reported as 404.
func dreamID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}
