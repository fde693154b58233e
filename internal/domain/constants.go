package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	PlatformFacebook  = "facebook"
	PlatformTikTok    = "tiktok"
	PlatformInstagram = "instagram"
)

const (
	ListingAvailable = "available"
	ListingSold      = "sold"
	ListingHidden    = "hidden"
)

const (
	OrderPendingPayment   = "pending_payment"
	OrderPaymentSubmitted = "payment_submitted"
	OrderApproved         = "approved"
	OrderRejected         = "rejected"
	OrderDelivered        = "delivered"
)

const (
	PaymentMethodWallet       = "wallet"
	PaymentMethodBankTransfer = "bank_transfer"
)

const (
	PaymentStatusUnpaid    = "unpaid"
	PaymentStatusSubmitted = "submitted"
	PaymentStatusPaid      = "paid"
	PaymentStatusRejected  = "rejected"
)

const (
	TxTypeDeposit    = "deposit"
	TxTypeWithdrawal = "withdrawal"
	TxTypePurchase   = "purchase"
	TxTypeRefund     = "refund"
)

const (
	TxPending  = "pending"
	TxApproved = "approved"
	TxRejected = "rejected"
)

const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// Event types posted to the notification mailer endpoint.
const (
	EventUserCreated           = "user_created"
	EventOrderCreated          = "order_created"
	EventOrderPaymentSubmitted = "order_payment_submitted"
	EventOrderDelivered        = "order_delivered"
	EventPasswordReset         = "password_reset"
)

// DefaultOrderLimit is the monthly wallet-purchase quota for new wallets.
const DefaultOrderLimit = 5

func ValidPlatform(p string) bool {
	return p == PlatformFacebook || p == PlatformTikTok || p == PlatformInstagram
}

func ValidListingStatus(s string) bool {
	return s == ListingAvailable || s == ListingSold || s == ListingHidden
}

func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodWallet || m == PaymentMethodBankTransfer
}

func ValidTicketStatus(s string) bool {
	return s == TicketOpen || s == TicketInProgress || s == TicketResolved || s == TicketClosed
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPendingPayment, OrderPaymentSubmitted, OrderApproved, OrderRejected, OrderDelivered:
		return true
	}
	return false
}

func ValidTransactionStatus(s string) bool {
	return s == TxPending || s == TxApproved || s == TxRejected
}
