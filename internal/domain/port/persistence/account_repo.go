package persistence

import (
	"context"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
)

// AccountRepository defines the durable store of credit accounts.
// The ledger engine is the sole mutator; everything else reads.
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account with the given ID exists
	// - ErrStoreUnavailable: if the store cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// LockByID retrieves an account under an exclusive row lock. Only valid
	// inside a unit-of-work transaction; the lock is held until commit or
	// rollback, serializing conflicting operations on the same account while
	// leaving other accounts uncontended.
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account with the given ID exists
	// - ErrConcurrentConflict: if lock acquisition hit deadlock or timeout
	// - ErrStoreUnavailable: if the store cannot be reached
	LockByID(ctx context.Context, id uint64) (*entity.Account, error)

	// Create persists a new account with its starting grant
	//
	// Possible errors:
	// - ErrDuplicateAccount: if an account with the same ID already exists
	// - ErrStoreUnavailable: if the store cannot be reached
	Create(ctx context.Context, account *entity.Account) error

	// Update writes the account's balance and recharge timestamp
	//
	// Possible errors:
	// - ErrAccountNotFound: if the account doesn't exist
	// - ErrStoreUnavailable: if the store cannot be reached
	Update(ctx context.Context, account *entity.Account) error
}
