package service

import (
	"errors"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/metrics"
	"github.com/emmanuelethelbert04/account-haven/internal/models"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrNotDeposit       = errors.New("transaction is not a deposit")
	ErrAlreadyProcessed = errors.New("transaction already processed")
)

// WalletService maintains the per-user ledger: funding requests and the
// admin approval queue. Approval applies the balance credit exactly once —
// the status flip is a conditional update inside the same transaction as the
// credit.
type WalletService struct {
	db         *gorm.DB
	walletRepo *repository.WalletRepository
	txRepo     *repository.WalletTxRepository
	notifRepo  *repository.NotificationRepository
	metrics    *metrics.MarketplaceMetrics
	log        *logrus.Entry
}

func NewWalletService(
	db *gorm.DB,
	walletRepo *repository.WalletRepository,
	txRepo *repository.WalletTxRepository,
	notifRepo *repository.NotificationRepository,
	m *metrics.MarketplaceMetrics,
) *WalletService {
	return &WalletService{
		db:         db,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		notifRepo:  notifRepo,
		metrics:    m,
		log:        logrus.WithField("component", "wallet"),
	}
}

func (s *WalletService) GetWallet(userID uint) (*models.Wallet, error) {
	return s.walletRepo.GetOrCreate(userID)
}

func (s *WalletService) ListTransactions(userID uint, limit, offset int) ([]models.WalletTransaction, error) {
	return s.txRepo.ListByUser(userID, limit, offset)
}

// RequestDeposit records a pending funding request. The balance is only
// touched when an admin approves.
func (s *WalletService) RequestDeposit(userID uint, amountCents int64, proofURL string) (*models.WalletTransaction, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if proofURL == "" {
		return nil, ErrProofRequired
	}
	w, err := s.walletRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	t := &models.WalletTransaction{
		WalletID:    w.ID,
		UserID:      userID,
		AmountCents: amountCents,
		Type:        domain.TxTypeDeposit,
		Status:      domain.TxPending,
		Description: "Wallet funding request",
		ProofURL:    proofURL,
	}
	if err := s.txRepo.Create(t); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.DepositsRequestedTotal.Inc()
	}
	s.log.WithFields(logrus.Fields{"user_id": userID, "amount_cents": amountCents}).
		Info("deposit requested")
	return t, nil
}

// ApproveDeposit credits the wallet by the transaction amount. A second
// approval of the same transaction fails with ErrAlreadyProcessed and leaves
// the balance alone.
func (s *WalletService) ApproveDeposit(txID uint) (*models.WalletTransaction, error) {
	t, err := s.txRepo.GetByID(txID)
	if err != nil {
		return nil, err
	}
	if t.Type != domain.TxTypeDeposit {
		return nil, ErrNotDeposit
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		flipped, err := s.txRepo.MarkProcessedTx(tx, t.ID, domain.TxApproved, "")
		if err != nil {
			return err
		}
		if !flipped {
			return ErrAlreadyProcessed
		}
		return s.walletRepo.CreditTx(tx, t.WalletID, t.AmountCents)
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DepositsApprovedTotal.Inc()
		s.metrics.DepositsApprovedAmountTotal.Add(float64(t.AmountCents))
	}
	s.notifyUser(t.UserID, "deposit_approved", "Deposit approved",
		"Your wallet funding request has been approved and credited.")
	s.log.WithFields(logrus.Fields{"tx_id": t.ID, "amount_cents": t.AmountCents}).
		Info("deposit approved")
	return s.txRepo.GetByID(t.ID)
}

// RejectDeposit declines a funding request; the balance is untouched.
func (s *WalletService) RejectDeposit(txID uint, reason string) (*models.WalletTransaction, error) {
	t, err := s.txRepo.GetByID(txID)
	if err != nil {
		return nil, err
	}
	if t.Type != domain.TxTypeDeposit {
		return nil, ErrNotDeposit
	}

	description := ""
	if reason != "" {
		description = "Rejected: " + reason
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		flipped, err := s.txRepo.MarkProcessedTx(tx, t.ID, domain.TxRejected, description)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrAlreadyProcessed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DepositsRejectedTotal.Inc()
	}
	s.notifyUser(t.UserID, "deposit_rejected", "Deposit rejected",
		"Your wallet funding request was rejected.")
	return s.txRepo.GetByID(t.ID)
}

func (s *WalletService) notifyUser(userID uint, notifType, title, body string) {
	if s.notifRepo == nil {
		return
	}
	n := &models.Notification{UserID: userID, Type: notifType, Title: title, Body: body}
	if err := s.notifRepo.Create(n); err != nil {
		s.log.WithError(err).Warn("create in-app notification")
	}
}
