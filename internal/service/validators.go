package service

import (
	"regexp"

	"github.com/eaglebank/bank-api/internal/models"
	"github.com/shopspring/decimal"
)

// MaxTransactionAmount is the largest single posting the API accepts.
var MaxTransactionAmount = decimal.NewFromInt(10000)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,30}$`)
)

// validationBuilder accumulates per-field failures for a single request
type validationBuilder struct {
	details []FieldDetail
}

func (v *validationBuilder) add(field, message string) {
	v.details = append(v.details, FieldDetail{Field: field, Message: message, Type: "validation"})
}

func (v *validationBuilder) require(field, value string) {
	if value == "" {
		v.add(field, "must not be blank")
	}
}

func (v *validationBuilder) err() error {
	if len(v.details) == 0 {
		return nil
	}
	return &ServiceError{
		Code:    ErrCodeValidation,
		Message: "Invalid request",
		Details: v.details,
	}
}

func validateCreateUser(req CreateUserRequest) error {
	var v validationBuilder
	v.require("name", req.Name)
	v.require("address.line1", req.Address.Line1)
	v.require("address.town", req.Address.Town)
	v.require("address.county", req.Address.County)
	v.require("address.postcode", req.Address.Postcode)
	v.require("phoneNumber", req.PhoneNumber)
	v.require("email", req.Email)
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		v.add("email", "must be a valid email address")
	}
	if req.PhoneNumber != "" && !phonePattern.MatchString(req.PhoneNumber) {
		v.add("phoneNumber", "must be a valid phone number")
	}
	return v.err()
}

func validateUpdateUser(req UpdateUserRequest) error {
	var v validationBuilder
	if req.Name != nil && *req.Name == "" {
		v.add("name", "must not be blank")
	}
	if req.Email != nil && !emailPattern.MatchString(*req.Email) {
		v.add("email", "must be a valid email address")
	}
	if req.PhoneNumber != nil && !phonePattern.MatchString(*req.PhoneNumber) {
		v.add("phoneNumber", "must be a valid phone number")
	}
	return v.err()
}

func validateAccountType(v *validationBuilder, field, value string) {
	switch models.AccountType(value) {
	case models.AccountTypePersonal, models.AccountTypeBusiness:
	default:
		v.add(field, "must be one of: personal, business")
	}
}

func validateCreateAccount(req CreateAccountRequest) error {
	var v validationBuilder
	v.require("name", req.Name)
	v.require("accountType", req.AccountType)
	if req.AccountType != "" {
		validateAccountType(&v, "accountType", req.AccountType)
	}
	return v.err()
}

func validateUpdateAccount(req UpdateAccountRequest) error {
	var v validationBuilder
	if req.Name != nil && *req.Name == "" {
		v.add("name", "must not be blank")
	}
	if req.AccountType != nil {
		validateAccountType(&v, "accountType", *req.AccountType)
	}
	return v.err()
}

func validateCreateTransaction(req CreateTransactionRequest, currency string) error {
	var v validationBuilder
	switch models.TransactionType(req.Type) {
	case models.TransactionTypeDeposit, models.TransactionTypeWithdrawal:
	default:
		v.add("type", "must be one of: deposit, withdrawal")
	}
	if !req.Amount.IsPositive() {
		v.add("amount", "must be greater than 0")
	}
	if req.Amount.GreaterThan(MaxTransactionAmount) {
		v.add("amount", "must not exceed 10000.00")
	}
	if req.Amount.Exponent() < -2 {
		v.add("amount", "must have at most 2 decimal places")
	}
	if req.Currency != currency {
		v.add("currency", "must be "+currency)
	}
	return v.err()
}
