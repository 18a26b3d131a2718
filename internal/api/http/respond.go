package http

import (
	"encoding/json"
	"net/http"

	"digishield-backend/internal/logger"
)

// All handlers answer JSON: {"error": "..."} on failure, domain-specific or
// {"success": true, "data": ...} shapes on success.

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondSuccess(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}
