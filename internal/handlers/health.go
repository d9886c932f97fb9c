package handlers

import "net/http"

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
