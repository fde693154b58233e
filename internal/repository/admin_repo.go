package repository

import (
	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"

	"gorm.io/gorm"
)

// DashboardStats backs the admin overview page.
type DashboardStats struct {
	TotalUsers          int64 `json:"total_users"`
	TotalListings       int64 `json:"total_listings"`
	AvailableListings   int64 `json:"available_listings"`
	SoldListings        int64 `json:"sold_listings"`
	TotalOrders         int64 `json:"total_orders"`
	PendingOrders       int64 `json:"pending_orders"`
	SubmittedOrders     int64 `json:"submitted_orders"`
	DeliveredOrders     int64 `json:"delivered_orders"`
	PendingDeposits     int64 `json:"pending_deposits"`
	OpenTickets         int64 `json:"open_tickets"`
	RevenueCents        int64 `json:"revenue_cents"`
	PendingDepositCents int64 `json:"pending_deposit_cents"`
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetDashboardStats() (*DashboardStats, error) {
	var s DashboardStats

	r.db.Model(&models.User{}).Count(&s.TotalUsers)
	r.db.Model(&models.Listing{}).Count(&s.TotalListings)
	r.db.Model(&models.Listing{}).Where("status = ?", domain.ListingAvailable).Count(&s.AvailableListings)
	r.db.Model(&models.Listing{}).Where("status = ?", domain.ListingSold).Count(&s.SoldListings)
	r.db.Model(&models.Order{}).Count(&s.TotalOrders)
	r.db.Model(&models.Order{}).Where("status = ?", domain.OrderPendingPayment).Count(&s.PendingOrders)
	r.db.Model(&models.Order{}).Where("status = ?", domain.OrderPaymentSubmitted).Count(&s.SubmittedOrders)
	r.db.Model(&models.Order{}).Where("status = ?", domain.OrderDelivered).Count(&s.DeliveredOrders)
	r.db.Model(&models.WalletTransaction{}).
		Where("type = ? AND status = ?", domain.TxTypeDeposit, domain.TxPending).
		Count(&s.PendingDeposits)
	r.db.Model(&models.SupportTicket{}).Where("status = ?", domain.TicketOpen).Count(&s.OpenTickets)

	var revenue *int64
	if err := r.db.Model(&models.Order{}).
		Where("status = ?", domain.OrderDelivered).
		Select("SUM(amount_cents)").Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		s.RevenueCents = *revenue
	}

	var pendingDeposit *int64
	if err := r.db.Model(&models.WalletTransaction{}).
		Where("type = ? AND status = ?", domain.TxTypeDeposit, domain.TxPending).
		Select("SUM(amount_cents)").Scan(&pendingDeposit).Error; err != nil {
		return nil, err
	}
	if pendingDeposit != nil {
		s.PendingDepositCents = *pendingDeposit
	}

	return &s, nil
}
