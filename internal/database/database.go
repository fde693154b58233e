package database

import (
	"github.com/emmanuelethelbert04/account-haven/config"
	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Order{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.SupportTicket{},
		&models.BankSettings{},
		&models.Notification{},
	)
}

// SeedAdmin creates the initial admin account if it does not exist yet.
// Skipped when no admin password is configured.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	if cfg.Email == "" || cfg.Password == "" {
		logrus.Warn("admin seed skipped: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return
	}
	var existing models.User
	if err := db.Where("email = ?", cfg.Email).First(&existing).Error; err == nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("admin seed: hash password")
		return
	}
	admin := &models.User{
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		logrus.WithError(err).Error("admin seed: create user")
		return
	}
	logrus.WithField("email", cfg.Email).Info("admin account seeded")
}
