package models

import (
	"time"

	"gorm.io/gorm"
)

// Listing is a social-media account offered for sale. Listings are soft
// deleted only; a sold listing keeps its row for order history.
type Listing struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Platform           string         `gorm:"size:20;not null;index" json:"platform"`
	Title              string         `gorm:"size:255;not null" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	PriceCents         int64          `gorm:"not null" json:"price_cents"`
	FollowersCount     int64          `gorm:"not null;default:0;index" json:"followers_count"`
	Country            string         `gorm:"size:100" json:"country"`
	Niche              string         `gorm:"size:100" json:"niche"`
	AccountAge         string         `gorm:"size:50" json:"account_age"`
	Images             []string       `gorm:"serializer:json" json:"images"`
	LoginScreenshotURL string         `gorm:"size:512" json:"login_screenshot_url"`
	Status             string         `gorm:"size:20;not null;index;default:'available'" json:"status"`
	Featured           bool           `gorm:"not null;default:false;index" json:"featured"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Listing) TableName() string { return "listings" }
