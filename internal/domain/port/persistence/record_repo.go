package persistence

import (
	"context"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
)

// RecordRepository defines access to the append-only audit trail.
// Records are never updated or deleted.
type RecordRepository interface {
	// Append stores a new transaction record. Called inside the same
	// unit-of-work transaction as the balance write so both land or neither.
	//
	// Possible errors:
	// - ErrDuplicatePayment: if the record carries a reference that was already applied
	// - ErrStoreUnavailable: if the store cannot be reached
	Append(ctx context.Context, record *entity.TransactionRecord) error

	// ListByAccount returns all records for an account in append order
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	ListByAccount(ctx context.Context, accountID uint64) ([]entity.TransactionRecord, error)

	// SumByAccount returns the signed sum of all record amounts for an
	// account. Starting grant plus this sum must equal the stored balance.
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	SumByAccount(ctx context.Context, accountID uint64) (int64, error)

	// ReferenceExists checks whether a payment reference was already applied.
	// Used for the fast idempotency path before acquiring locks.
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	ReferenceExists(ctx context.Context, reference string) (bool, error)
}
