package handler

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string `json:"status"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}
}
