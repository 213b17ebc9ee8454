// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrBadRequest           = errors.New("bad request")
	ErrValidation           = errors.New("validation failed")
	ErrInvalidUserID        = errors.New("invalid user ID format")
	ErrInvalidAccountNumber = errors.New("invalid account number format")
	ErrUserNotFound         = errors.New("user not found")
	ErrAccountNotFound      = errors.New("bank account not found")
	ErrDuplicateEntry       = errors.New("duplicate entry") // Unique key violations surfaced by the store
)

// IsError reports whether err matches the target sentinel error.
// Thin wrapper around errors.Is for call-site readability.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
