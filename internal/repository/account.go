package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	FindAllByUserID(ctx context.Context, userID string) ([]*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	UpdateBalance(ctx context.Context, accountNumber string, newBalance decimal.Decimal, expectedVersion int64) error
	Delete(ctx context.Context, accountNumber string) error
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db db.Querier
}

// NewAccountRepository creates a new AccountRepository bound to the given querier.
func NewAccountRepository(q db.Querier) AccountRepository {
	return &accountRepository{db: q}
}

const accountColumns = `id, user_id, sort_code, name, account_type, balance,
	       currency, version, created_timestamp, updated_timestamp`

// Create inserts a new account row with balance zero and version zero
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, user_id, sort_code, name, account_type,
		                      balance, currency, version,
		                      created_timestamp, updated_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, NOW(), NOW())
		RETURNING version, created_timestamp, updated_timestamp
	`

	err := r.db.QueryRowContext(ctx, query,
		account.AccountNumber,
		account.UserID,
		account.SortCode,
		account.Name,
		account.AccountType,
		account.Balance,
		account.Currency,
	).Scan(&account.Version, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// FindByNumber retrieves an account by its account number
func (r *accountRepository) FindByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, accountNumber))
}

// FindAllByUserID retrieves all accounts owned by the given user
func (r *accountRepository) FindAllByUserID(ctx context.Context, userID string) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_timestamp`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // rows error checked via rows.Err

	accounts := []*models.Account{}
	for rows.Next() {
		var account models.Account
		if err := scanAccountFields(rows, &account); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// Update persists the mutable metadata fields (name, type) of an account.
// Balance and version are never touched here; balance changes go through
// UpdateBalance exclusively.
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $2,
		    account_type = $3,
		    updated_timestamp = NOW()
		WHERE id = $1
		RETURNING updated_timestamp
	`

	err := r.db.QueryRowContext(ctx, query,
		account.AccountNumber,
		account.Name,
		account.AccountType,
	).Scan(&account.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("account %s: %w", account.AccountNumber, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}

// UpdateBalance writes the new balance with a compare-and-swap on the
// version column. Zero rows affected with an existing account means a
// concurrent writer committed first; the caller decides whether to retry.
func (r *accountRepository) UpdateBalance(ctx context.Context, accountNumber string, newBalance decimal.Decimal, expectedVersion int64) error {
	query := `
		UPDATE accounts
		SET balance = $2,
		    version = version + 1,
		    updated_timestamp = NOW()
		WHERE id = $1 AND version = $3
	`

	result, err := r.db.ExecContext(ctx, query, accountNumber, newBalance, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("account %s version %d: %w", accountNumber, expectedVersion, models.ErrVersionConflict)
	}

	return nil
}

// Delete removes an account row; its transactions cascade at the schema level
func (r *accountRepository) Delete(ctx context.Context, accountNumber string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, accountNumber)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("account %s: %w", accountNumber, models.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *accountRepository) scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	err := scanAccountFields(row, &account)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	return &account, nil
}

func scanAccountFields(row rowScanner, account *models.Account) error {
	return row.Scan(
		&account.AccountNumber,
		&account.UserID,
		&account.SortCode,
		&account.Name,
		&account.AccountType,
		&account.Balance,
		&account.Currency,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
}
