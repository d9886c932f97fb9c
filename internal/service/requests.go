package service

import "github.com/shopspring/decimal"

// AddressRequest carries the postal address supplied at registration
type AddressRequest struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// CreateUserRequest is the payload for user registration
type CreateUserRequest struct {
	Name        string         `json:"name"`
	Address     AddressRequest `json:"address"`
	PhoneNumber string         `json:"phoneNumber"`
	Email       string         `json:"email"`
}

// UpdateAddressRequest carries a partial address update; nil fields are
// left unchanged
type UpdateAddressRequest struct {
	Line1    *string `json:"line1,omitempty"`
	Line2    *string `json:"line2,omitempty"`
	Line3    *string `json:"line3,omitempty"`
	Town     *string `json:"town,omitempty"`
	County   *string `json:"county,omitempty"`
	Postcode *string `json:"postcode,omitempty"`
}

// UpdateUserRequest is the payload for a partial profile update
type UpdateUserRequest struct {
	Name        *string               `json:"name,omitempty"`
	Address     *UpdateAddressRequest `json:"address,omitempty"`
	PhoneNumber *string               `json:"phoneNumber,omitempty"`
	Email       *string               `json:"email,omitempty"`
}

// CreateAccountRequest is the payload for opening an account
type CreateAccountRequest struct {
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
}

// UpdateAccountRequest is the payload for a partial account update;
// only name and type are mutable
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty"`
	AccountType *string `json:"accountType,omitempty"`
}

// CreateTransactionRequest is the payload for posting a deposit or withdrawal
type CreateTransactionRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Type      string          `json:"type"`
	Reference string          `json:"reference,omitempty"`
}

// LoginRequest is the payload for credential authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
