package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource (account, pot, currency,
// transaction) could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates a balance precondition failed for a transfer.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrUnbalanced indicates the debit and credit legs of a transaction do not sum equally.
var ErrUnbalanced = errors.New("transaction legs do not balance")

// ErrExchangeRateMissing indicates no rate exists for a currency pair at or
// before the requested time.
var ErrExchangeRateMissing = errors.New("exchange rate missing")

// ErrPotOwnership indicates a pot does not belong to the stated account.
var ErrPotOwnership = errors.New("pot does not belong to account")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps lower-level failures (typically storage errors) with a code
// and message so that raw driver errors never escape the repository layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
