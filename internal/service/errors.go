package service

import "fmt"

// FieldDetail describes a single request-field validation failure
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
	Details []FieldDetail
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeValidation          = "validation_failed"
	ErrCodeUnauthenticated     = "unauthenticated"
	ErrCodeForbidden           = "forbidden"
	ErrCodeUserNotFound        = "user_not_found"
	ErrCodeAccountNotFound     = "account_not_found"
	ErrCodeTransactionNotFound = "transaction_not_found"
	ErrCodeEmailTaken          = "email_taken"
	ErrCodeUserHasAccounts     = "user_has_accounts"
	ErrCodeInsufficientFunds   = "insufficient_funds"
	ErrCodeRetryExhausted      = "retry_exhausted"
	ErrCodeInternalError       = "internal_error"
)
