package models

import (
	"time"

	"gorm.io/gorm"
)

// SupportTicket is a contact-form submission tracked through a resolution
// workflow. Admins may move a ticket between any two states.
type SupportTicket struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:120;not null" json:"name"`
	Email         string         `gorm:"size:255;not null" json:"email"`
	Subject       string         `gorm:"size:255;not null" json:"subject"`
	Message       string         `gorm:"type:text;not null" json:"message"`
	Status        string         `gorm:"size:20;not null;index;default:'open'" json:"status"`
	AdminResponse string         `gorm:"type:text" json:"admin_response"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SupportTicket) TableName() string { return "support_tickets" }
