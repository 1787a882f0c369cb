package migration

import (
	"context"
	"fmt"

	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Manager runs schema migrations at startup
type Manager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewManager creates a migration manager
func NewManager(db *gorm.DB, logger coreport.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll brings the schema up to date. The unique index on the record
// reference column is what enforces payment idempotency; migrations must
// never drop it.
func (m *Manager) MigrateAll() error {
	m.logger.Info("Running database migrations", nil)

	// Migrations often race the database finishing startup; retry the
	// transient failures instead of crashing the whole boot
	err := database.RetryOnTransientError(context.Background(), database.DefaultRetryConfig(), func() error {
		return m.db.AutoMigrate(&model.Account{}, &model.TransactionRecord{})
	}, m.logger)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// Covering index for statement reads and ledger-sum reconciliation
	if err := m.db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_records_account_created ON transaction_records (account_id, created_at)",
	).Error; err != nil {
		return fmt.Errorf("failed to create statement index: %w", err)
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}
