package repository

import (
	"errors"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"gorm.io/gorm"
)

var ErrInsufficientBalance = errors.New("insufficient wallet balance")

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) GetByUserID(userID uint) (*models.Wallet, error) {
	var w models.Wallet
	if err := r.db.Where("user_id = ?", userID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// GetOrCreate returns the user's wallet, creating it lazily with a zero
// balance and the default monthly order quota.
func (r *WalletRepository) GetOrCreate(userID uint) (*models.Wallet, error) {
	return getOrCreateWallet(r.db, userID)
}

// GetOrCreateTx is GetOrCreate bound to an open transaction.
func (r *WalletRepository) GetOrCreateTx(tx *gorm.DB, userID uint) (*models.Wallet, error) {
	return getOrCreateWallet(tx, userID)
}

func getOrCreateWallet(db *gorm.DB, userID uint) (*models.Wallet, error) {
	var w models.Wallet
	err := db.Where("user_id = ?", userID).First(&w).Error
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	w = models.Wallet{UserID: userID, BalanceCents: 0, OrderLimit: domain.DefaultOrderLimit, OrdersUsed: 0}
	if err := db.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// CreditTx adds to the wallet balance inside an open transaction.
func (r *WalletRepository) CreditTx(tx *gorm.DB, walletID uint, amountCents int64) error {
	return tx.Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("balance_cents", gorm.Expr("balance_cents + ?", amountCents)).Error
}

// DebitForPurchaseTx atomically spends from the wallet and bumps the monthly
// order counter. The balance guard lives in the WHERE clause so a concurrent
// spend can never drive the balance negative.
func (r *WalletRepository) DebitForPurchaseTx(tx *gorm.DB, walletID uint, amountCents int64) error {
	res := tx.Model(&models.Wallet{}).
		Where("id = ? AND balance_cents >= ?", walletID, amountCents).
		Updates(map[string]interface{}{
			"balance_cents": gorm.Expr("balance_cents - ?", amountCents),
			"orders_used":   gorm.Expr("orders_used + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

// ResetMonthlyUsage zeroes the orders_used counter on every wallet. Invoked
// by the monthly cron job.
func (r *WalletRepository) ResetMonthlyUsage() (int64, error) {
	res := r.db.Model(&models.Wallet{}).
		Where("orders_used > 0").
		Update("orders_used", 0)
	return res.RowsAffected, res.Error
}
