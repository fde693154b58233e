package service

import (
	"errors"
	"strings"

	"github.com/emmanuelethelbert04/account-haven/config"
	"github.com/emmanuelethelbert04/account-haven/internal/auth"
	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"
	"github.com/emmanuelethelbert04/account-haven/pkg/notifier"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists   = errors.New("email already registered")
	ErrInvalidCreds  = errors.New("invalid email or password")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
	ErrEmailRequired = errors.New("a valid email is required")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
	events   *notifier.Client
	log      *logrus.Entry
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository, events *notifier.Client) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: userRepo,
		events:   events,
		log:      logrus.WithField("component", "auth"),
	}
}

func (s *AuthService) Register(email, password string) (*models.User, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", "", ErrEmailRequired
	}
	if len(password) < 8 {
		return nil, "", "", ErrWeakPassword
	}
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", "", ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	u := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, "", "", err
	}

	if s.events != nil {
		s.events.Emit(domain.EventUserCreated, map[string]interface{}{"email": u.Email})
	}
	s.log.WithField("email", u.Email).Info("user registered")

	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return u, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return u, access, "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Refresh(refreshToken string) (access, refresh string, err error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", "", err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}
	access, err = auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err = auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ChangePassword updates the password after verifying the current one.
func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.userRepo.Update(u)
}

// ForgotPassword mails a reset token to the address if it is registered.
// Unknown addresses are ignored silently so the endpoint cannot be used to
// enumerate accounts.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	token, err := auth.GenerateResetToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return err
	}
	if s.events != nil {
		s.events.Emit(domain.EventPasswordReset, map[string]interface{}{
			"email": u.Email,
			"token": token,
		})
	}
	return nil
}

// ResetPassword sets a new password from a valid reset token.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}
	userID, err := auth.ParseResetToken(&s.cfg.JWT, token)
	if err != nil {
		return err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return auth.ErrInvalidToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.userRepo.Update(u)
}
