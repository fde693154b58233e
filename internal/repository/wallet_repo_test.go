package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupWalletRepoTestDB(t *testing.T) (*gorm.DB, *WalletRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:wallet_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Wallet{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db, NewWalletRepository(db)
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	_, repo := setupWalletRepoTestDB(t)

	w1, err := repo.GetOrCreate(7)
	if err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	if w1.BalanceCents != 0 || w1.OrderLimit != domain.DefaultOrderLimit || w1.OrdersUsed != 0 {
		t.Errorf("fresh wallet = %+v", w1)
	}

	w2, err := repo.GetOrCreate(7)
	if err != nil {
		t.Fatalf("second get or create failed: %v", err)
	}
	if w2.ID != w1.ID {
		t.Errorf("second call created a new wallet: %d vs %d", w2.ID, w1.ID)
	}
}

func TestDebitForPurchaseGuardsBalance(t *testing.T) {
	db, repo := setupWalletRepoTestDB(t)

	w := &models.Wallet{UserID: 1, BalanceCents: 10000, OrderLimit: domain.DefaultOrderLimit}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("create wallet failed: %v", err)
	}

	if err := repo.DebitForPurchaseTx(db, w.ID, 4000); err != nil {
		t.Fatalf("debit failed: %v", err)
	}
	if err := db.First(w, w.ID).Error; err != nil {
		t.Fatalf("reload wallet failed: %v", err)
	}
	if w.BalanceCents != 6000 {
		t.Errorf("balance = %d, want 6000", w.BalanceCents)
	}
	if w.OrdersUsed != 1 {
		t.Errorf("orders used = %d, want 1", w.OrdersUsed)
	}

	// Overdraft is refused outright, not clamped.
	if err := repo.DebitForPurchaseTx(db, w.ID, 6001); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	if err := db.First(w, w.ID).Error; err != nil {
		t.Fatalf("reload wallet failed: %v", err)
	}
	if w.BalanceCents != 6000 || w.OrdersUsed != 1 {
		t.Errorf("failed debit mutated wallet: %+v", w)
	}

	// Spending the exact balance is allowed.
	if err := repo.DebitForPurchaseTx(db, w.ID, 6000); err != nil {
		t.Fatalf("exact debit failed: %v", err)
	}
	if err := db.First(w, w.ID).Error; err != nil {
		t.Fatalf("reload wallet failed: %v", err)
	}
	if w.BalanceCents != 0 {
		t.Errorf("balance = %d, want 0", w.BalanceCents)
	}
}

func TestCreditIncreasesBalance(t *testing.T) {
	db, repo := setupWalletRepoTestDB(t)

	w := &models.Wallet{UserID: 2, BalanceCents: 500}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("create wallet failed: %v", err)
	}
	if err := repo.CreditTx(db, w.ID, 1500); err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if err := db.First(w, w.ID).Error; err != nil {
		t.Fatalf("reload wallet failed: %v", err)
	}
	if w.BalanceCents != 2000 {
		t.Errorf("balance = %d, want 2000", w.BalanceCents)
	}
}

func TestResetMonthlyUsageZeroesAllCounters(t *testing.T) {
	db, repo := setupWalletRepoTestDB(t)

	wallets := []models.Wallet{
		{UserID: 1, OrdersUsed: 3},
		{UserID: 2, OrdersUsed: 5},
		{UserID: 3, OrdersUsed: 0},
	}
	for i := range wallets {
		if err := db.Create(&wallets[i]).Error; err != nil {
			t.Fatalf("create wallet failed: %v", err)
		}
	}

	n, err := repo.ResetMonthlyUsage()
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if n != 2 {
		t.Errorf("reset touched %d wallets, want 2", n)
	}

	var remaining int64
	db.Model(&models.Wallet{}).Where("orders_used > 0").Count(&remaining)
	if remaining != 0 {
		t.Errorf("%d wallets still have usage", remaining)
	}
}
