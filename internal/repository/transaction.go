package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/models"
)

// TransactionRepository defines the interface for transaction data access.
// Postings are append-only; there are no update or delete operations.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	FindByIDAndAccount(ctx context.Context, id, accountNumber string) (*models.Transaction, error)
	FindAllByAccount(ctx context.Context, accountNumber string) ([]*models.Transaction, error)
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db db.Querier
}

// NewTransactionRepository creates a new TransactionRepository bound to the given querier.
func NewTransactionRepository(q db.Querier) TransactionRepository {
	return &transactionRepository{db: q}
}

const transactionColumns = `id, account_id, user_id, amount, currency, type,
	       reference, created_timestamp`

// Create inserts a new transaction row
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, account_id, user_id, amount, currency,
		                          type, reference, created_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_timestamp
	`

	err := r.db.QueryRowContext(ctx, query,
		txn.ID,
		txn.AccountNumber,
		txn.UserID,
		txn.Amount,
		txn.Currency,
		txn.Type,
		nullable(txn.Reference),
	).Scan(&txn.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// FindByIDAndAccount retrieves a transaction by id scoped to an account.
// An id that exists under a different account is not found.
func (r *transactionRepository) FindByIDAndAccount(ctx context.Context, id, accountNumber string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND account_id = $2`

	var txn models.Transaction
	var reference sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, accountNumber).Scan(
		&txn.ID,
		&txn.AccountNumber,
		&txn.UserID,
		&txn.Amount,
		&txn.Currency,
		&txn.Type,
		&reference,
		&txn.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	txn.Reference = reference.String
	return &txn, nil
}

// FindAllByAccount retrieves all transactions posted against an account,
// oldest first.
func (r *transactionRepository) FindAllByAccount(ctx context.Context, accountNumber string) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 ORDER BY created_timestamp`

	rows, err := r.db.QueryContext(ctx, query, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close() //nolint:errcheck // rows error checked via rows.Err

	transactions := []*models.Transaction{}
	for rows.Next() {
		var txn models.Transaction
		var reference sql.NullString
		if err := rows.Scan(
			&txn.ID,
			&txn.AccountNumber,
			&txn.UserID,
			&txn.Amount,
			&txn.Currency,
			&txn.Type,
			&reference,
			&txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Reference = reference.String
		transactions = append(transactions, &txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
