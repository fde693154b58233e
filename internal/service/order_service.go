package service

import (
	"errors"
	"time"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/metrics"
	"github.com/emmanuelethelbert04/account-haven/internal/models"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"
	"github.com/emmanuelethelbert04/account-haven/pkg/notifier"
	"github.com/emmanuelethelbert04/account-haven/pkg/ordercode"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrListingUnavailable   = errors.New("listing is not available")
	ErrListingReserved      = errors.New("listing already has an active order")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrOrderLimitReached    = errors.New("monthly order limit reached")
	ErrInvalidTransition    = errors.New("order cannot move to that status")
	ErrProofRequired        = errors.New("payment proof is required")
	ErrReasonRequired       = errors.New("rejection reason is required")
	ErrDeliveryNoteRequired = errors.New("delivery note is required")
	ErrNotBankTransfer      = errors.New("order is not a bank transfer")
)

// OrderService owns the order lifecycle: checkout, proof submission and the
// admin approve/reject/deliver moves. Every multi-row mutation runs in a
// single database transaction.
type OrderService struct {
	db         *gorm.DB
	orderRepo  *repository.OrderRepository
	walletRepo *repository.WalletRepository
	userRepo   *repository.UserRepository
	notifRepo  *repository.NotificationRepository
	codes      *ordercode.Generator
	events     *notifier.Client
	metrics    *metrics.MarketplaceMetrics
	log        *logrus.Entry
}

func NewOrderService(
	db *gorm.DB,
	orderRepo *repository.OrderRepository,
	walletRepo *repository.WalletRepository,
	userRepo *repository.UserRepository,
	notifRepo *repository.NotificationRepository,
	codes *ordercode.Generator,
	events *notifier.Client,
	m *metrics.MarketplaceMetrics,
) *OrderService {
	return &OrderService{
		db:         db,
		orderRepo:  orderRepo,
		walletRepo: walletRepo,
		userRepo:   userRepo,
		notifRepo:  notifRepo,
		codes:      codes,
		events:     events,
		metrics:    m,
		log:        logrus.WithField("component", "orders"),
	}
}

// Checkout creates an order against an available listing. Bank-transfer
// orders start in pending_payment; wallet orders debit the balance, claim the
// listing and land directly in approved with the payment already made. The
// whole flow is one transaction, so an insufficient balance rolls everything
// back and leaves the wallet untouched.
func (s *OrderService) Checkout(userID uint, listingID uint, method string) (*models.Order, error) {
	if !domain.ValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}

	var order *models.Order
	var listing models.Listing
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&listing, listingID).Error; err != nil {
			return err
		}
		if listing.Status != domain.ListingAvailable {
			return ErrListingUnavailable
		}
		var reserved int64
		if err := tx.Model(&models.Order{}).
			Where("listing_id = ? AND status IN ?", listing.ID, domain.NonTerminalOrderStatuses()).
			Count(&reserved).Error; err != nil {
			return err
		}
		if reserved > 0 {
			return ErrListingReserved
		}

		order = &models.Order{
			OrderCode:     s.codes.Next(),
			UserID:        userID,
			ListingID:     listing.ID,
			AmountCents:   listing.PriceCents,
			Status:        domain.OrderPendingPayment,
			PaymentMethod: method,
			PaymentStatus: domain.PaymentStatusUnpaid,
		}

		if method == domain.PaymentMethodWallet {
			w, err := s.walletRepo.GetOrCreateTx(tx, userID)
			if err != nil {
				return err
			}
			if w.OrdersUsed >= w.OrderLimit {
				return ErrOrderLimitReached
			}
			if err := s.walletRepo.DebitForPurchaseTx(tx, w.ID, listing.PriceCents); err != nil {
				return err
			}
			purchase := &models.WalletTransaction{
				WalletID:    w.ID,
				UserID:      userID,
				AmountCents: listing.PriceCents,
				Type:        domain.TxTypePurchase,
				Status:      domain.TxApproved,
				Description: "Purchase " + order.OrderCode,
			}
			if err := tx.Create(purchase).Error; err != nil {
				return err
			}
			// Claim the listing; status guard keeps two checkouts from both
			// winning the same account.
			res := tx.Model(&models.Listing{}).
				Where("id = ? AND status = ?", listing.ID, domain.ListingAvailable).
				Update("status", domain.ListingSold)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrListingUnavailable
			}
			order.Status = domain.OrderApproved
			order.PaymentStatus = domain.PaymentStatusPaid
		}

		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.OrdersCreatedTotal.WithLabelValues(listing.Platform, method).Inc()
		s.metrics.OrdersCreatedAmountTotal.WithLabelValues(listing.Platform, method).Add(float64(order.AmountCents))
	}
	s.notifyUser(userID, "order_created", "Order "+order.OrderCode+" created",
		"Your order for \""+listing.Title+"\" has been created.")
	s.emit(domain.EventOrderCreated, order, &listing)
	s.log.WithFields(logrus.Fields{
		"order_code": order.OrderCode,
		"listing_id": listing.ID,
		"method":     method,
	}).Info("order created")
	return order, nil
}

// SubmitProof attaches the buyer's bank-transfer proof and moves the order
// to payment_submitted.
func (s *OrderService) SubmitProof(userID, orderID uint, proofURL, note string) (*models.Order, error) {
	if proofURL == "" {
		return nil, ErrProofRequired
	}
	order, err := s.orderRepo.GetByIDForUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != domain.PaymentMethodBankTransfer {
		return nil, ErrNotBankTransfer
	}
	if !domain.CanTransition(order.Status, domain.OrderPaymentSubmitted) {
		return nil, ErrInvalidTransition
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, domain.OrderPendingPayment).
		Updates(map[string]interface{}{
			"status":         domain.OrderPaymentSubmitted,
			"payment_status": domain.PaymentStatusSubmitted,
			"proof_url":      proofURL,
			"note":           note,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	order, err = s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	s.emit(domain.EventOrderPaymentSubmitted, order, &order.Listing)
	s.log.WithField("order_code", order.OrderCode).Info("payment proof submitted")
	return order, nil
}

// Approve marks a submitted bank transfer as verified.
func (s *OrderService) Approve(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(order.Status, domain.OrderApproved) {
		return nil, ErrInvalidTransition
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, domain.OrderPaymentSubmitted).
		Updates(map[string]interface{}{
			"status":         domain.OrderApproved,
			"payment_status": domain.PaymentStatusPaid,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	if s.metrics != nil {
		s.metrics.OrdersApprovedTotal.Inc()
	}
	s.notifyUser(order.UserID, "order_approved", "Payment confirmed",
		"Payment for order "+order.OrderCode+" has been confirmed. Delivery is on the way.")
	return s.orderRepo.GetByID(order.ID)
}

// Reject declines a submitted payment. The reason is mandatory and the
// rejection is terminal for this order; the listing stays purchasable.
func (s *OrderService) Reject(orderID uint, reason string) (*models.Order, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(order.Status, domain.OrderRejected) {
		return nil, ErrInvalidTransition
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, domain.OrderPaymentSubmitted).
		Updates(map[string]interface{}{
			"status":           domain.OrderRejected,
			"payment_status":   domain.PaymentStatusRejected,
			"rejection_reason": reason,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	if s.metrics != nil {
		s.metrics.OrdersRejectedTotal.Inc()
	}
	s.notifyUser(order.UserID, "order_rejected", "Payment rejected",
		"Payment for order "+order.OrderCode+" was rejected: "+reason)
	return s.orderRepo.GetByID(order.ID)
}

// Deliver hands the account credentials to the buyer and closes out the
// order. The listing is stamped sold in the same transaction.
func (s *OrderService) Deliver(orderID uint, deliveryNote string) (*models.Order, error) {
	if deliveryNote == "" {
		return nil, ErrDeliveryNoteRequired
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(order.Status, domain.OrderDelivered) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, domain.OrderApproved).
			Updates(map[string]interface{}{
				"status":       domain.OrderDelivered,
				"admin_note":   deliveryNote,
				"delivered_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		return tx.Model(&models.Listing{}).
			Where("id = ?", order.ListingID).
			Update("status", domain.ListingSold).Error
	})
	if err != nil {
		return nil, err
	}

	order, err = s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.OrdersDeliveredTotal.WithLabelValues(order.Listing.Platform, order.PaymentMethod).Inc()
		s.metrics.OrdersDeliveredAmountTotal.WithLabelValues(order.Listing.Platform, order.PaymentMethod).Add(float64(order.AmountCents))
	}
	s.notifyUser(order.UserID, "order_delivered", "Order delivered",
		"Order "+order.OrderCode+" has been delivered. Check your dashboard for access details.")
	s.emit(domain.EventOrderDelivered, order, &order.Listing)
	s.log.WithField("order_code", order.OrderCode).Info("order delivered")
	return order, nil
}

func (s *OrderService) emit(eventType string, order *models.Order, listing *models.Listing) {
	if s.events == nil {
		return
	}
	record := map[string]interface{}{"order": order}
	if listing != nil && listing.ID != 0 {
		record["listing"] = listing
	}
	if s.userRepo != nil {
		if u, err := s.userRepo.GetByID(order.UserID); err == nil {
			record["email"] = u.Email
		}
	}
	s.events.Emit(eventType, record)
}

func (s *OrderService) notifyUser(userID uint, notifType, title, body string) {
	if s.notifRepo == nil {
		return
	}
	n := &models.Notification{UserID: userID, Type: notifType, Title: title, Body: body}
	if err := s.notifRepo.Create(n); err != nil {
		s.log.WithError(err).Warn("create in-app notification")
	}
}
