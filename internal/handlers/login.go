package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/eaglebank/bank-api/internal/service"
)

// Login handles POST /v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A malformed login body gets the same generic 401 as bad
		// credentials; the endpoint never explains itself.
		h.respondJSON(w, http.StatusUnauthorized, ErrorResponse{Message: "Invalid email or password"})
		return
	}

	grant, err := h.authService.Login(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, LoginResponse{
		AccessToken: grant.AccessToken,
		TokenType:   grant.TokenType,
		ExpiresIn:   grant.ExpiresIn,
	})
}
