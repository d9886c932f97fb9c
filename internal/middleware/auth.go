// Package middleware provides HTTP middleware components for the bank API.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eaglebank/bank-api/internal/auth"
)

type errorResponse struct {
	Message string `json:"message"`
}

// Authenticate creates middleware that enforces a Bearer access token and
// places the authenticated user id into the request context. The response
// never reveals whether the subject exists, only that the token failed.
func Authenticate(tokens *auth.TokenService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeUnauthorized(w, logger)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeUnauthorized(w, logger)
				return
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				logger.Debug("rejected access token", "error", err)
				writeUnauthorized(w, logger)
				return
			}

			ctx := auth.WithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Message: "Access token is missing or invalid",
	}); err != nil {
		logger.Error("failed to encode unauthorized response", "error", err)
	}
}
