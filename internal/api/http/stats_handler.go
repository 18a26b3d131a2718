package http

import (
	"net/http"

	"digishield-backend/internal/logger"
	"digishield-backend/internal/service"
)

// StatsHandler serves the admin dashboard counters
type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Dashboard(r.Context())
	if err != nil {
		// Aggregate failures are not client-correctable.
		logger.Error("Failed to compute stats", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"stats": stats})
}
