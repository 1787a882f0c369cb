package persistence

import (
	"context"
)

// UnitOfWork coordinates the balance write and the audit append as a single
// indivisible unit: either both happen or neither does. Every exit path,
// including error paths, must release the transaction.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetRecordRepository returns a record repository bound to the current transaction
	GetRecordRepository(ctx context.Context) RecordRepository
}
