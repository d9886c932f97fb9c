package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/eaglebank/bank-api/internal/repository"
)

// TransactionService owns the balance-mutation protocol: transaction
// creation is the only path through which an account balance changes.
type TransactionService struct {
	db       *db.DB
	currency string
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(database *db.DB, currency string) *TransactionService {
	return &TransactionService{
		db:       database,
		currency: currency,
	}
}

// Create posts a deposit or withdrawal against an account.
//
// Each attempt runs as one atomic unit: load the account, check ownership
// and sufficiency, then commit the new balance (compare-and-swap on the
// version column) together with the transaction row. A version conflict
// rolls the attempt back and re-runs the whole sequence, bounded by the
// retry policy; readers are never blocked.
func (s *TransactionService) Create(ctx context.Context, accountNumber string, req CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateCreateTransaction(req, s.currency); err != nil {
		return nil, err
	}

	var created *models.Transaction
	err := retryOnVersionConflict(ctx, maxBalanceAttempts, balanceRetryInterval, func() error {
		txn, attemptErr := s.createOnce(ctx, accountNumber, req)
		if attemptErr != nil {
			return attemptErr
		}
		created = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// createOnce executes a single attempt of the protocol inside one database
// transaction. It either commits both writes or leaves no trace.
func (s *TransactionService) createOnce(ctx context.Context, accountNumber string, req CreateTransactionRequest) (*models.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txn, err := s.performCreate(ctx,
		repository.NewAccountRepository(tx),
		repository.NewTransactionRepository(tx),
		accountNumber, req,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return txn, nil
}

// performCreate contains the core balance-mutation logic
func (s *TransactionService) performCreate(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	accountNumber string,
	req CreateTransactionRequest,
) (*models.Transaction, error) {
	account, err := accountRepo.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, mapAccountRepoError(err)
	}

	if err := authorizeOwner(ctx, account.UserID, "The user is not allowed to transact on the bank account"); err != nil {
		return nil, err
	}

	newBalance := account.Balance
	if models.TransactionType(req.Type) == models.TransactionTypeWithdrawal {
		if account.Balance.LessThan(req.Amount) {
			return nil, &ServiceError{
				Code:    ErrCodeInsufficientFunds,
				Message: "Insufficient funds to process transaction",
			}
		}
		newBalance = newBalance.Sub(req.Amount)
	} else {
		newBalance = newBalance.Add(req.Amount)
	}

	// The version read above guards the write: if another posting committed
	// in between, zero rows match and the whole attempt is retried.
	if err := accountRepo.UpdateBalance(ctx, accountNumber, newBalance, account.Version); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		ID:            generateTransactionID(),
		AccountNumber: account.AccountNumber,
		UserID:        account.UserID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Type:          models.TransactionType(req.Type),
		Reference:     req.Reference,
	}

	if err := transactionRepo.Create(ctx, txn); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to record transaction",
			Err:     err,
		}
	}

	return txn, nil
}

// List returns all transactions posted against an account, owner-guarded,
// oldest first.
func (s *TransactionService) List(ctx context.Context, accountNumber string) ([]*models.Transaction, error) {
	if err := s.guardAccount(ctx, accountNumber, "The user is not allowed to access the transactions"); err != nil {
		return nil, err
	}

	repo := repository.NewTransactionRepository(s.db)
	transactions, err := repo.FindAllByAccount(ctx, accountNumber)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "unexpected storage failure",
			Err:     err,
		}
	}

	return transactions, nil
}

// FetchByID returns a single transaction. The id must belong to the given
// account; an id that exists under a different account is not found.
func (s *TransactionService) FetchByID(ctx context.Context, accountNumber, transactionID string) (*models.Transaction, error) {
	if err := s.guardAccount(ctx, accountNumber, "The user is not allowed to access the transaction"); err != nil {
		return nil, err
	}

	repo := repository.NewTransactionRepository(s.db)
	txn, err := repo.FindByIDAndAccount(ctx, transactionID, accountNumber)
	if err != nil {
		return nil, mapTransactionRepoError(err)
	}

	return txn, nil
}

// guardAccount loads the account addressed in the path and checks ownership
func (s *TransactionService) guardAccount(ctx context.Context, accountNumber, message string) error {
	accountRepo := repository.NewAccountRepository(s.db)
	account, err := accountRepo.FindByNumber(ctx, accountNumber)
	if err != nil {
		return mapAccountRepoError(err)
	}
	return authorizeOwner(ctx, account.UserID, message)
}

func mapTransactionRepoError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeTransactionNotFound,
			Message: "Transaction was not found",
		}
	}
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: "unexpected storage failure",
		Err:     err,
	}
}
