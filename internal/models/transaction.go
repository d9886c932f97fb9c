package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a posting
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Transaction represents an immutable posting against an account.
//
// UserID denormalizes the account owner at the time of posting.
type Transaction struct {
	CreatedAt     time.Time       `db:"created_timestamp"`
	ID            string          `db:"id"`
	AccountNumber string          `db:"account_id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	Type          TransactionType `db:"type"`
	Reference     string          `db:"reference"`
}

// IdempotencyKey tracks processed requests to prevent duplicate transactions.
// Entries are scoped to the authenticated user: the same client key presented
// by a different principal is a distinct entry, never a replay.
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	UserID         string    `db:"user_id"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
