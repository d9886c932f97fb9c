package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/eaglebank/bank-api/internal/service"
	"github.com/gorilla/mux"
)

// CreateUser handles POST /v1/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBadBody(w)
		return
	}

	user, err := h.userService.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toUserResponse(user))
}

// FetchUser handles GET /v1/users/{userId}
func (h *Handler) FetchUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := h.userService.FetchByID(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateUser handles PATCH /v1/users/{userId}
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req service.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBadBody(w)
		return
	}

	user, err := h.userService.UpdateByID(r.Context(), userID, req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /v1/users/{userId}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := h.userService.DeleteByID(r.Context(), userID); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
