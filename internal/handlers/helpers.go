package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eaglebank/bank-api/internal/service"
)

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// respondServiceError translates a service failure into the API error body.
// Unexpected errors never leak their internals to the client.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) {
		h.logger.Error("unexpected error", "error", err)
		h.respondJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "An unexpected error occurred"})
		return
	}

	status := statusForCode(svcErr.Code)
	if status == http.StatusInternalServerError {
		h.logger.Error("internal failure", "code", svcErr.Code, "error", svcErr)
		h.respondJSON(w, status, ErrorResponse{Message: "An unexpected error occurred"})
		return
	}

	if svcErr.Code == service.ErrCodeValidation {
		h.respondJSON(w, status, BadRequestErrorResponse{
			Message: svcErr.Message,
			Details: toFieldDetails(svcErr.Details),
		})
		return
	}

	h.respondJSON(w, status, ErrorResponse{Message: svcErr.Message})
}

func (h *Handler) respondBadBody(w http.ResponseWriter) {
	h.respondJSON(w, http.StatusBadRequest, BadRequestErrorResponse{
		Message: "Invalid request",
		Details: []FieldDetail{{Field: "body", Message: "Malformed JSON request", Type: "invalid"}},
	})
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeValidation:
		return http.StatusBadRequest
	case service.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case service.ErrCodeForbidden:
		return http.StatusForbidden
	case service.ErrCodeUserNotFound,
		service.ErrCodeAccountNotFound,
		service.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case service.ErrCodeEmailTaken, service.ErrCodeUserHasAccounts:
		return http.StatusConflict
	case service.ErrCodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	default:
		// retry_exhausted, internal_error and anything unrecognized
		return http.StatusInternalServerError
	}
}

func toFieldDetails(details []service.FieldDetail) []FieldDetail {
	out := make([]FieldDetail, 0, len(details))
	for _, d := range details {
		out = append(out, FieldDetail{Field: d.Field, Message: d.Message, Type: d.Type})
	}
	return out
}
