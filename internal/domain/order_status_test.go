package domain

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{OrderPendingPayment, OrderPaymentSubmitted, true},
		{OrderPaymentSubmitted, OrderApproved, true},
		{OrderPaymentSubmitted, OrderRejected, true},
		{OrderApproved, OrderDelivered, true},

		{OrderPendingPayment, OrderApproved, false},
		{OrderPendingPayment, OrderDelivered, false},
		{OrderPaymentSubmitted, OrderDelivered, false},
		{OrderRejected, OrderApproved, false},
		{OrderDelivered, OrderApproved, false},
		{OrderApproved, OrderRejected, false},
		{OrderDelivered, OrderDelivered, false},
		{"bogus", OrderApproved, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTerminalOrderStatus(t *testing.T) {
	for _, s := range []string{OrderRejected, OrderDelivered} {
		if !TerminalOrderStatus(s) {
			t.Errorf("%q should be terminal", s)
		}
	}
	for _, s := range []string{OrderPendingPayment, OrderPaymentSubmitted, OrderApproved} {
		if TerminalOrderStatus(s) {
			t.Errorf("%q should not be terminal", s)
		}
	}
}

func TestNonTerminalOrderStatuses(t *testing.T) {
	for _, s := range NonTerminalOrderStatuses() {
		if TerminalOrderStatus(s) {
			t.Errorf("%q listed as non-terminal but has no transitions", s)
		}
	}
}
