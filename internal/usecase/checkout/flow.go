package checkout

import (
	domorder "example.com/trustylads/storefront/internal/domain/order"
	dompayment "example.com/trustylads/storefront/internal/domain/payment"
)

type Step int

const (
	StepContact Step = iota + 1
	StepShipping
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// Data is the transient wizard state, built incrementally across steps
// and never persisted. It goes away with the flow.
type Data struct {
	Customer      domorder.Customer
	Shipping      domorder.ShippingAddress
	PaymentMethod domorder.PaymentMethod
}

// Flow is one session's trip through the checkout wizard. InFlight guards
// duplicate submission; Intent is set while the hosted payment widget is
// open; Confirmation is the receipt id once the order went through.
type Flow struct {
	SessionID    string
	Step         Step
	Data         Data
	InFlight     bool
	Intent       *dompayment.GatewayOrder
	Confirmation string
}

func newFlow(sessionID string) *Flow {
	return &Flow{
		SessionID: sessionID,
		Step:      StepContact,
		Data: Data{
			Shipping:      domorder.ShippingAddress{Country: "India"},
			PaymentMethod: domorder.MethodRazorpay,
		},
	}
}

func (f *Flow) Complete() bool {
	return f.Confirmation != ""
}

func (f *Flow) AwaitingPayment() bool {
	return f.Intent != nil
}
