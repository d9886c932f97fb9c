package handlers

import (
	"time"

	"github.com/eaglebank/bank-api/internal/models"
	"github.com/shopspring/decimal"
)

// Monetary fields serialize as JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// AddressResponse is the nested postal address in user responses
type AddressResponse struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Address          AddressResponse `json:"address"`
	PhoneNumber      string          `json:"phoneNumber"`
	Email            string          `json:"email"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
	UpdatedTimestamp time.Time       `json:"updatedTimestamp"`
}

// BankAccountResponse is the API representation of an account
type BankAccountResponse struct {
	AccountNumber    string          `json:"accountNumber"`
	SortCode         string          `json:"sortCode"`
	Name             string          `json:"name"`
	AccountType      string          `json:"accountType"`
	Balance          decimal.Decimal `json:"balance"`
	Currency         string          `json:"currency"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
	UpdatedTimestamp time.Time       `json:"updatedTimestamp"`
}

// ListBankAccountsResponse wraps the account list
type ListBankAccountsResponse struct {
	Accounts []BankAccountResponse `json:"accounts"`
}

// TransactionResponse is the API representation of a posting
type TransactionResponse struct {
	ID               string          `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Type             string          `json:"type"`
	Reference        string          `json:"reference,omitempty"`
	UserID           string          `json:"userId"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
}

// ListTransactionsResponse wraps the transaction list
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// LoginResponse carries an issued access token
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// ErrorResponse is the uniform failure body
type ErrorResponse struct {
	Message string `json:"message"`
}

// BadRequestErrorResponse carries per-field validation details
type BadRequestErrorResponse struct {
	Message string        `json:"message"`
	Details []FieldDetail `json:"details"`
}

// FieldDetail mirrors service.FieldDetail in the response body
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:   user.ID,
		Name: user.Name,
		Address: AddressResponse{
			Line1:    user.Address.Line1,
			Line2:    user.Address.Line2,
			Line3:    user.Address.Line3,
			Town:     user.Address.Town,
			County:   user.Address.County,
			Postcode: user.Address.Postcode,
		},
		PhoneNumber:      user.PhoneNumber,
		Email:            user.Email,
		CreatedTimestamp: user.CreatedAt,
		UpdatedTimestamp: user.UpdatedAt,
	}
}

func toAccountResponse(account *models.Account) BankAccountResponse {
	return BankAccountResponse{
		AccountNumber:    account.AccountNumber,
		SortCode:         account.SortCode,
		Name:             account.Name,
		AccountType:      string(account.AccountType),
		Balance:          account.Balance,
		Currency:         account.Currency,
		CreatedTimestamp: account.CreatedAt,
		UpdatedTimestamp: account.UpdatedAt,
	}
}

func toTransactionResponse(txn *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               txn.ID,
		Amount:           txn.Amount,
		Currency:         txn.Currency,
		Type:             string(txn.Type),
		Reference:        txn.Reference,
		UserID:           txn.UserID,
		CreatedTimestamp: txn.CreatedAt,
	}
}
