// Package handlers implements HTTP handlers for the bank API.
package handlers

import (
	"log/slog"

	"github.com/eaglebank/bank-api/internal/service"
)

// Handler holds the service dependencies for all endpoints
type Handler struct {
	authService        service.Authenticator
	userService        service.UserManager
	accountService     service.AccountManager
	transactionService service.TransactionManager
	logger             *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	authService service.Authenticator,
	userService service.UserManager,
	accountService service.AccountManager,
	transactionService service.TransactionManager,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authService:        authService,
		userService:        userService,
		accountService:     accountService,
		transactionService: transactionService,
		logger:             logger,
	}
}
