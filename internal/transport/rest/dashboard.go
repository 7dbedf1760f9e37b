package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

type dashboardService interface {
	Get(ctx context.Context) (*domain.Dashboard, error)
}

// DashboardHandler serves the journal overview.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(d))
}
