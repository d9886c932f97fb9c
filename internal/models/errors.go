package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail indicates a user with the same email already exists
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrVersionConflict indicates a compare-and-swap balance update lost the
	// race against a concurrent writer
	ErrVersionConflict = errors.New("account version conflict")
)
