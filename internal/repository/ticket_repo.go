package repository

import (
	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(t *models.SupportTicket) error {
	return r.db.Create(t).Error
}

func (r *TicketRepository) GetByID(id uint) (*models.SupportTicket, error) {
	var t models.SupportTicket
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) Update(t *models.SupportTicket) error {
	return r.db.Save(t).Error
}

func (r *TicketRepository) List(status string, limit, offset int) ([]models.SupportTicket, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.db.Model(&models.SupportTicket{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tickets []models.SupportTicket
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tickets).Error
	return tickets, err
}
