package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a buyer's claim on a listing. AmountCents snapshots the listing
// price at checkout and never changes afterwards.
type Order struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	OrderCode       string         `gorm:"size:40;uniqueIndex;not null" json:"order_code"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	ListingID       uint           `gorm:"not null;index" json:"listing_id"`
	AmountCents     int64          `gorm:"not null" json:"amount_cents"`
	Status          string         `gorm:"size:30;not null;index;default:'pending_payment'" json:"status"`
	PaymentMethod   string         `gorm:"size:20;not null" json:"payment_method"`
	PaymentStatus   string         `gorm:"size:20;not null;default:'unpaid'" json:"payment_status"`
	ProofURL        string         `gorm:"size:512" json:"proof_url"`
	Note            string         `gorm:"size:512" json:"note"`
	AdminNote       string         `gorm:"type:text" json:"admin_note"`
	RejectionReason string         `gorm:"size:512" json:"rejection_reason"`
	DeliveredAt     *time.Time     `json:"delivered_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Listing Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (Order) TableName() string { return "orders" }
