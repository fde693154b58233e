package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/emmanuelethelbert04/account-haven/config"
	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTestDB(t *testing.T) *AuthService {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "access-secret",
			RefreshSecret: "refresh-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 7 * 24 * time.Hour,
			ResetExpiry:   time.Hour,
			Issuer:        "account-haven",
		},
	}
	return NewAuthService(cfg, repository.NewUserRepository(db), nil)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuthServiceTestDB(t)

	u, access, refresh, err := svc.Register("Buyer@Example.com", "hunter22pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if u.Email != "buyer@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.Role != domain.RoleUser {
		t.Errorf("role = %q, want USER", u.Role)
	}
	if access == "" || refresh == "" {
		t.Error("register did not issue tokens")
	}

	if _, _, _, err := svc.Register("buyer@example.com", "anotherpass1"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("err = %v, want ErrEmailExists", err)
	}

	if _, _, _, err := svc.Login("buyer@example.com", "hunter22pass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, _, _, err := svc.Login("buyer@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCreds) {
		t.Fatalf("err = %v, want ErrInvalidCreds", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "hunter22pass"); !errors.Is(err, ErrInvalidCreds) {
		t.Fatalf("err = %v, want ErrInvalidCreds", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := setupAuthServiceTestDB(t)

	if _, _, _, err := svc.Register("not-an-email", "longenough1"); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("err = %v, want ErrEmailRequired", err)
	}
	if _, _, _, err := svc.Register("ok@example.com", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc := setupAuthServiceTestDB(t)

	_, _, refresh, err := svc.Register("rotate@example.com", "hunter22pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	access2, refresh2, err := svc.Refresh(refresh)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Error("refresh did not issue tokens")
	}
	if _, _, err := svc.Refresh("garbage"); err == nil {
		t.Error("garbage refresh token accepted")
	}
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	svc := setupAuthServiceTestDB(t)

	u, _, _, err := svc.Register("change@example.com", "originalpass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(u.ID, "wrongpass", "newpassword1"); !errors.Is(err, ErrInvalidCreds) {
		t.Fatalf("err = %v, want ErrInvalidCreds", err)
	}
	if err := svc.ChangePassword(u.ID, "originalpass", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}
	if err := svc.ChangePassword(u.ID, "originalpass", "newpassword1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, _, _, err := svc.Login("change@example.com", "newpassword1"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, _, err := svc.Login("change@example.com", "originalpass"); !errors.Is(err, ErrInvalidCreds) {
		t.Fatalf("old password still works")
	}
}

func TestForgotPasswordSilentOnUnknownEmail(t *testing.T) {
	svc := setupAuthServiceTestDB(t)

	if err := svc.ForgotPassword("ghost@example.com"); err != nil {
		t.Fatalf("forgot password leaked account existence: %v", err)
	}
}
