package handlers

import (
	"log/slog"
	"net/http"

	"github.com/eaglebank/bank-api/internal/auth"
	"github.com/eaglebank/bank-api/internal/config"
	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/middleware"
	"github.com/eaglebank/bank-api/internal/repository"
	"github.com/eaglebank/bank-api/internal/service"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	authService := service.NewAuthService(database, tokens)
	userService := service.NewUserService(database, cfg.Auth.DefaultUserPassword)
	accountService := service.NewAccountService(database, cfg.Bank.SortCode, cfg.Bank.Currency)
	transactionService := service.NewTransactionService(database, cfg.Bank.Currency)

	handler := NewHandler(authService, userService, accountService, transactionService, logger)

	router := mux.NewRouter()
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.Metrics)

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Registration and login are the only unauthenticated API routes.
	router.HandleFunc("/v1/users", handler.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/v1/auth/login", handler.Login).Methods(http.MethodPost)

	protected := router.PathPrefix("/v1").Subrouter()
	protected.Use(middleware.Authenticate(tokens, logger))
	protected.Use(middleware.Idempotency(repository.NewIdempotencyRepository(database), logger))

	protected.HandleFunc("/users/{userId}", handler.FetchUser).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}", handler.UpdateUser).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}", handler.DeleteUser).Methods(http.MethodDelete)

	protected.HandleFunc("/accounts", handler.CreateAccount).Methods(http.MethodPost)
	protected.HandleFunc("/accounts", handler.ListAccounts).Methods(http.MethodGet)
	protected.HandleFunc("/accounts/{accountNumber}", handler.FetchAccount).Methods(http.MethodGet)
	protected.HandleFunc("/accounts/{accountNumber}", handler.UpdateAccount).Methods(http.MethodPatch)
	protected.HandleFunc("/accounts/{accountNumber}", handler.DeleteAccount).Methods(http.MethodDelete)

	protected.HandleFunc("/accounts/{accountNumber}/transactions", handler.CreateTransaction).Methods(http.MethodPost)
	protected.HandleFunc("/accounts/{accountNumber}/transactions", handler.ListTransactions).Methods(http.MethodGet)
	protected.HandleFunc("/accounts/{accountNumber}/transactions/{transactionId}", handler.FetchTransaction).Methods(http.MethodGet)

	return router
}
