package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/internal/service/user"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateUsername(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves /api/me.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Get handles GET /api/me.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /api/me.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateProfileInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.svc.UpdateUsername(r.Context(), req)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
