package models

import (
	"time"

	"gorm.io/gorm"
)

// Wallet holds a user's stored-value balance. One row per user, created
// lazily with a zero balance on first access. BalanceCents never goes
// negative; debits are conditional updates guarded by the current balance.
type Wallet struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	BalanceCents int64          `gorm:"not null;default:0" json:"balance_cents"`
	OrderLimit   int            `gorm:"not null;default:5" json:"order_limit"`
	OrdersUsed   int            `gorm:"not null;default:0" json:"orders_used"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Wallet) TableName() string { return "user_wallets" }
