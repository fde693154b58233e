package repository

import (
	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.Preload("Listing").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByIDForUser scopes the lookup to the owning buyer.
func (r *OrderRepository) GetByIDForUser(id, userID uint) (*models.Order, error) {
	var o models.Order
	err := r.db.Preload("Listing").Where("id = ? AND user_id = ?", id, userID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(userID uint, limit, offset int) ([]models.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var orders []models.Order
	err := r.db.Preload("Listing").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, err
}

// ListAll returns orders for the admin queue, optionally filtered by status.
func (r *OrderRepository) ListAll(status string, limit, offset int) ([]models.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.db.Preload("Listing")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.Order
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, err
}
