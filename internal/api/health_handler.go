package api

import (
	"context"
	"net/http"
	"time"

	"github.com/shelfmark/shelfmark-api/internal/api/shared"
)

// Pinger is the subset of database behavior the health check needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports process and store health.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /healthz. It pings the store with a short deadline and
// reports 503 when the store is unreachable.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "store unreachable", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
