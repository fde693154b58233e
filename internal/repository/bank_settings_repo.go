package repository

import (
	"errors"

	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"gorm.io/gorm"
)

type BankSettingsRepository struct {
	db *gorm.DB
}

func NewBankSettingsRepository(db *gorm.DB) *BankSettingsRepository {
	return &BankSettingsRepository{db: db}
}

// Get returns the singleton bank settings row, or nil when none has been
// configured yet.
func (r *BankSettingsRepository) Get() (*models.BankSettings, error) {
	var s models.BankSettings
	err := r.db.Order("id ASC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert updates the singleton row, creating it on first save.
func (r *BankSettingsRepository) Upsert(s *models.BankSettings) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(s).Error
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	return r.db.Save(s).Error
}
