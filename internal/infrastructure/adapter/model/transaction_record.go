package model

import (
	"time"
)

// TransactionRecord represents the database model for audit trail entries.
// Rows are append-only; nothing updates or deletes them.
type TransactionRecord struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID   uint64    `gorm:"not null;index"`
	Amount      int64     `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Kind        string    `gorm:"not null;size:20;index"`
	Reference   *string   `gorm:"uniqueIndex;size:255"` // null except for top-ups
	CreatedAt   time.Time `gorm:"not null"`

	// Define relationships
	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for TransactionRecord
func (TransactionRecord) TableName() string {
	return "transaction_records"
}
