package service

import (
	"context"

	"github.com/eaglebank/bank-api/internal/models"
)

// Authenticator exchanges credentials for access tokens
type Authenticator interface {
	Login(ctx context.Context, req LoginRequest) (*TokenGrant, error)
}

// UserManager handles user lifecycle operations
type UserManager interface {
	Create(ctx context.Context, req CreateUserRequest) (*models.User, error)
	FetchByID(ctx context.Context, userID string) (*models.User, error)
	UpdateByID(ctx context.Context, userID string, req UpdateUserRequest) (*models.User, error)
	DeleteByID(ctx context.Context, userID string) error
}

// AccountManager handles account lifecycle operations
type AccountManager interface {
	Create(ctx context.Context, req CreateAccountRequest) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
	FetchByNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	UpdateByNumber(ctx context.Context, accountNumber string, req UpdateAccountRequest) (*models.Account, error)
	DeleteByNumber(ctx context.Context, accountNumber string) error
}

// TransactionManager handles transaction posting and retrieval
type TransactionManager interface {
	Create(ctx context.Context, accountNumber string, req CreateTransactionRequest) (*models.Transaction, error)
	List(ctx context.Context, accountNumber string) ([]*models.Transaction, error)
	FetchByID(ctx context.Context, accountNumber, transactionID string) (*models.Transaction, error)
}

// Ensure concrete types implement interfaces
var (
	_ Authenticator      = (*AuthService)(nil)
	_ UserManager        = (*UserService)(nil)
	_ AccountManager     = (*AccountService)(nil)
	_ TransactionManager = (*TransactionService)(nil)
)
