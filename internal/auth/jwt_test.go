package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/emmanuelethelbert04/account-haven/config"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
		ResetExpiry:   time.Hour,
		Issuer:        "account-haven",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateAccessToken(cfg, 42, "user@example.com", "USER")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "user@example.com" || claims.Role != "USER" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateAccessToken(cfg, 1, "a@example.com", "USER")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	other := testJWTConfig()
	other.AccessSecret = "different"
	if _, err := ParseAccessToken(other, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
	if _, err := ParseAccessToken(cfg, "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateRefreshToken(cfg, 7)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	id, err := ParseRefreshToken(cfg, token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if id != 7 {
		t.Errorf("user id = %d, want 7", id)
	}

	// Refresh and access tokens are signed with different secrets.
	if _, err := ParseAccessToken(cfg, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("refresh token accepted as access token")
	}
}

func TestResetTokenAudienceScoping(t *testing.T) {
	cfg := testJWTConfig()

	reset, err := GenerateResetToken(cfg, 9)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	id, err := ParseResetToken(cfg, reset)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if id != 9 {
		t.Errorf("user id = %d, want 9", id)
	}

	// An ordinary access token lacks the reset audience and must be refused.
	access, err := GenerateAccessToken(cfg, 9, "u@example.com", "USER")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseResetToken(cfg, access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("access token accepted on reset endpoint")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessExpiry = -time.Minute

	token, err := GenerateAccessToken(cfg, 1, "old@example.com", "USER")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token accepted")
	}
}
