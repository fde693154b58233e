package repository

import (
	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"gorm.io/gorm"
)

type WalletTxRepository struct {
	db *gorm.DB
}

func NewWalletTxRepository(db *gorm.DB) *WalletTxRepository {
	return &WalletTxRepository{db: db}
}

func (r *WalletTxRepository) Create(t *models.WalletTransaction) error {
	return r.db.Create(t).Error
}

func (r *WalletTxRepository) GetByID(id uint) (*models.WalletTransaction, error) {
	var t models.WalletTransaction
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *WalletTxRepository) ListByUser(userID uint, limit, offset int) ([]models.WalletTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var txs []models.WalletTransaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&txs).Error
	return txs, err
}

// ListDeposits returns the admin funding queue, optionally by status.
func (r *WalletTxRepository) ListDeposits(status string, limit, offset int) ([]models.WalletTransaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.db.Where("type = ?", domain.TxTypeDeposit)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var txs []models.WalletTransaction
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txs).Error
	return txs, err
}

// MarkProcessedTx flips a pending transaction to its final status inside an
// open transaction. The status guard in the WHERE clause makes the flip
// apply at most once; zero rows affected means another admin got there first.
func (r *WalletTxRepository) MarkProcessedTx(tx *gorm.DB, id uint, status, description string) (bool, error) {
	updates := map[string]interface{}{"status": status}
	if description != "" {
		updates["description"] = description
	}
	res := tx.Model(&models.WalletTransaction{}).
		Where("id = ? AND status = ?", id, domain.TxPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
