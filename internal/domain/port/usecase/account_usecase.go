package usecase

import (
	"context"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
)

// AccountService provisions accounts and exposes read access for the
// surrounding system. Registration itself (credentials, identity) lives in
// an external collaborator; this service only creates the credit-bearing
// record with its starting grant.
type AccountService interface {
	// Register creates an account with the configured starting grant
	Register(ctx context.Context, id uint64, ageYears int) (*entity.Account, error)

	// Get retrieves an account without applying recharge
	Get(ctx context.Context, id uint64) (*entity.Account, error)

	// Statement returns the account's full audit trail in append order
	Statement(ctx context.Context, id uint64) ([]entity.TransactionRecord, error)
}
