package models

import (
	"time"
)

// BankSettings is the singleton record of bank details shown to buyers for
// manual transfers. Only the first row is ever read or updated.
type BankSettings struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BankName      string    `gorm:"size:120;not null" json:"bank_name"`
	AccountNumber string    `gorm:"size:50;not null" json:"account_number"`
	AccountName   string    `gorm:"size:120;not null" json:"account_name"`
	Instructions  string    `gorm:"type:text" json:"instructions"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (BankSettings) TableName() string { return "bank_settings" }
