package api

import (
	"net/http"

	"github.com/turtletrack/turtletrack/internal/api/respond"
	"github.com/turtletrack/turtletrack/internal/services"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

// GetStats GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}
