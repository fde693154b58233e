package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBankSettingsRepoTestDB(t *testing.T) *BankSettingsRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:bank_settings_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.BankSettings{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewBankSettingsRepository(db)
}

func TestBankSettingsSingleton(t *testing.T) {
	repo := setupBankSettingsRepoTestDB(t)

	got, err := repo.Get()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil before first save, got %+v", got)
	}

	first := &models.BankSettings{
		BankName:      "First National",
		AccountNumber: "0123456789",
		AccountName:   "Account Haven Ltd",
	}
	if err := repo.Upsert(first); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// A second upsert replaces the row instead of adding one.
	second := &models.BankSettings{
		BankName:      "Second Bank",
		AccountNumber: "9876543210",
		AccountName:   "Account Haven Ltd",
		Instructions:  "Use your order code as the transfer reference.",
	}
	if err := repo.Upsert(second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	got, err = repo.Get()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("upsert created a new row: id %d vs %d", got.ID, first.ID)
	}
	if got.BankName != "Second Bank" {
		t.Errorf("bank name = %q, want Second Bank", got.BankName)
	}
	if got.Instructions == "" {
		t.Error("instructions not stored")
	}
}
