package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketplaceMetrics tracks all order, wallet and ticket counters.
type MarketplaceMetrics struct {
	OrdersCreatedTotal         *prometheus.CounterVec
	OrdersCreatedAmountTotal   *prometheus.CounterVec
	OrdersApprovedTotal        prometheus.Counter
	OrdersRejectedTotal        prometheus.Counter
	OrdersDeliveredTotal       *prometheus.CounterVec
	OrdersDeliveredAmountTotal *prometheus.CounterVec

	DepositsRequestedTotal      prometheus.Counter
	DepositsApprovedTotal       prometheus.Counter
	DepositsApprovedAmountTotal prometheus.Counter
	DepositsRejectedTotal       prometheus.Counter

	TicketsOpenedTotal   prometheus.Counter
	TicketsResolvedTotal prometheus.Counter
}

func NewMarketplaceMetrics() *MarketplaceMetrics {
	return &MarketplaceMetrics{
		OrdersCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders created at checkout",
			},
			[]string{"platform", "payment_method"},
		),
		OrdersCreatedAmountTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_cents_total",
				Help: "Total amount of created orders in cents",
			},
			[]string{"platform", "payment_method"},
		),
		OrdersApprovedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_approved_total",
			Help: "Bank-transfer orders approved by an admin",
		}),
		OrdersRejectedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Orders rejected by an admin",
		}),
		OrdersDeliveredTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_delivered_total",
				Help: "Orders delivered",
			},
			[]string{"platform", "payment_method"},
		),
		OrdersDeliveredAmountTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_delivered_amount_cents_total",
				Help: "Total amount of delivered orders in cents",
			},
			[]string{"platform", "payment_method"},
		),
		DepositsRequestedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_deposits_requested_total",
			Help: "Wallet funding requests submitted",
		}),
		DepositsApprovedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_deposits_approved_total",
			Help: "Wallet funding requests approved",
		}),
		DepositsApprovedAmountTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_deposits_approved_amount_cents_total",
			Help: "Total approved deposit amount in cents",
		}),
		DepositsRejectedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_deposits_rejected_total",
			Help: "Wallet funding requests rejected",
		}),
		TicketsOpenedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "support_tickets_opened_total",
			Help: "Support tickets created via the contact form",
		}),
		TicketsResolvedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "support_tickets_resolved_total",
			Help: "Support tickets moved to resolved",
		}),
	}
}
