package model

import (
	"time"
)

// Account represents the database model for credit accounts
type Account struct {
	ID             uint64    `gorm:"primaryKey"`
	Balance        int64     `gorm:"not null;check:balance >= 0"`
	AgeYears       int       `gorm:"not null"`
	LastRechargeAt time.Time `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
