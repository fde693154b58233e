package domain

// orderTransitions whitelists every legal forward move of an order.
// Wallet-paid orders are created directly in the approved state, so
// pending_payment -> approved never happens as a transition.
var orderTransitions = map[string][]string{
	OrderPendingPayment:   {OrderPaymentSubmitted},
	OrderPaymentSubmitted: {OrderApproved, OrderRejected},
	OrderApproved:         {OrderDelivered},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TerminalOrderStatus reports whether no further transitions are possible.
func TerminalOrderStatus(s string) bool {
	return len(orderTransitions[s]) == 0
}

// NonTerminalOrderStatuses lists the statuses that keep a listing reserved.
func NonTerminalOrderStatuses() []string {
	return []string{OrderPendingPayment, OrderPaymentSubmitted, OrderApproved}
}
