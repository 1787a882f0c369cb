package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientCredits = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidAccountID    = 4003
	CodeDuplicatePayment    = 4004
	CodeInvalidKind         = 4005
	CodeDuplicateAccount    = 4006
	CodeAccountNotFound     = 4040
	CodeConcurrentConflict  = 4230

	// 5xxx - Server errors
	CodeStoreUnavailable = 5030
	CodeInternalServer   = 5000
)

// Base error types
var (
	// ErrInsufficientCredits is returned when an account lacks the credits for a debit
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrInvalidAmount is returned when a debit or credit amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidAccountID is returned when the account ID is not a positive integer
	ErrInvalidAccountID = errors.New("account ID must be positive")

	// ErrInvalidKind is returned when a credit is requested with a kind other than recharge or topup
	ErrInvalidKind = errors.New("invalid record kind")

	// ErrInvalidAge is returned when an account is registered with a negative age
	ErrInvalidAge = errors.New("age cannot be negative")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrRecordNotFound is returned when the requested transaction record doesn't exist
	ErrRecordNotFound = errors.New("transaction record not found")

	// ErrDuplicatePayment is returned when a payment reference was already applied
	ErrDuplicatePayment = errors.New("payment reference already applied")

	// ErrDuplicateAccount is returned when trying to create an account that already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrConcurrentConflict is returned when lock or serialization contention
	// exhausted all retries; the whole operation is safe to retry
	ErrConcurrentConflict = errors.New("concurrent ledger conflict")

	// ErrStoreUnavailable is returned when the persistence layer fails; no
	// partial write is ever left visible
	ErrStoreUnavailable = errors.New("account store unavailable")

	// ErrEmptyReference is returned when a payment confirmation carries no reference
	ErrEmptyReference = errors.New("payment reference cannot be empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrDuplicatePayment):
		return CodeDuplicatePayment
	case errors.Is(err, ErrInvalidKind):
		return CodeInvalidKind
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrConcurrentConflict):
		return CodeConcurrentConflict
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError provides detailed error information for a rejected debit
type InsufficientCreditsError struct {
	AccountID uint64
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for account %d: required %d, available %d",
		e.AccountID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"account_id": e.AccountID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(accountID uint64, requested, available int64) error {
	return &InsufficientCreditsError{
		AccountID: accountID,
		Requested: requested,
		Available: available,
	}
}

// LedgerError represents an error raised while applying a ledger operation
type LedgerError struct {
	AccountID   uint64
	Amount      int64
	Description string
	Err         error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger operation failed for account %d (amount: %d, description: %s): %v",
		e.AccountID, e.Amount, e.Description, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "ledger_error",
		"account_id":  e.AccountID,
		"amount":      e.Amount,
		"description": e.Description,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(accountID uint64, amount int64, description string, err error) error {
	return &LedgerError{
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Err:         err,
	}
}

// DuplicatePaymentError provides detailed information about a repeated payment confirmation
type DuplicatePaymentError struct {
	Reference string
	AccountID uint64
}

// Error implements the error interface
func (e *DuplicatePaymentError) Error() string {
	return fmt.Sprintf("duplicate payment confirmation: reference=%s for account %d",
		e.Reference, e.AccountID)
}

// Is checks if the target error is an ErrDuplicatePayment
func (e *DuplicatePaymentError) Is(target error) bool {
	return target == ErrDuplicatePayment
}

// LogFields returns a map of fields for structured logging
func (e *DuplicatePaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_payment",
		"reference":  e.Reference,
		"account_id": e.AccountID,
		"error_code": CodeDuplicatePayment,
	}
}

// NewDuplicatePaymentError creates a new detailed duplicate payment error
func NewDuplicatePaymentError(reference string, accountID uint64) error {
	return &DuplicatePaymentError{
		Reference: reference,
		AccountID: accountID,
	}
}

// IsInsufficientCreditsError checks if the error is related to insufficient credits
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsDuplicatePaymentError checks if the error is a duplicate payment error
func IsDuplicatePaymentError(err error) bool {
	return errors.Is(err, ErrDuplicatePayment)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrRecordNotFound)
}

// IsConcurrentConflictError checks if the error is due to exhausted lock contention retries
func IsConcurrentConflictError(err error) bool {
	return errors.Is(err, ErrConcurrentConflict)
}

// IsStoreUnavailableError checks if the error comes from the persistence layer
func IsStoreUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
