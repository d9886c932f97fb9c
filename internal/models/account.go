package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType enumerates the supported account categories
type AccountType string

const (
	AccountTypePersonal AccountType = "personal"
	AccountTypeBusiness AccountType = "business"
)

// Account represents a customer bank account with its running balance.
//
// Version is the optimistic-concurrency counter: every committed balance
// mutation increments it, and writers must present the version they read.
type Account struct {
	CreatedAt     time.Time       `db:"created_timestamp"`
	UpdatedAt     time.Time       `db:"updated_timestamp"`
	AccountNumber string          `db:"id"`
	UserID        string          `db:"user_id"`
	SortCode      string          `db:"sort_code"`
	Name          string          `db:"name"`
	AccountType   AccountType     `db:"account_type"`
	Balance       decimal.Decimal `db:"balance"`
	Currency      string          `db:"currency"`
	Version       int64           `db:"version"`
}
