package models

import (
	"time"

	"gorm.io/gorm"
)

// WalletTransaction is a ledger entry against a wallet. Deposits are created
// pending and only an admin approval credits the balance; purchases are
// written already approved inside the checkout transaction.
type WalletTransaction struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	WalletID    uint           `gorm:"not null;index" json:"wallet_id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	AmountCents int64          `gorm:"not null" json:"amount_cents"`
	Type        string         `gorm:"size:20;not null;index" json:"type"`
	Status      string         `gorm:"size:20;not null;index;default:'pending'" json:"status"`
	Description string         `gorm:"size:512" json:"description"`
	ProofURL    string         `gorm:"size:512" json:"proof_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Wallet Wallet `gorm:"foreignKey:WalletID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

func (WalletTransaction) TableName() string { return "wallet_transactions" }
