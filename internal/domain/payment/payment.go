package payment

// GatewayOrder is the server-issued payment intent returned by the
// backend before the hosted widget opens. Receipt carries the original
// storefront order id and keys the confirmation view.
type GatewayOrder struct {
	ID       string `json:"id"`
	Receipt  string `json:"receipt"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// OutcomeKind is one of the three terminal results of the out-of-process
// payment step.
type OutcomeKind string

const (
	OutcomeApproved  OutcomeKind = "approved"
	OutcomeDeclined  OutcomeKind = "declined"
	OutcomeAbandoned OutcomeKind = "abandoned"
)

// Outcome replaces the widget's nested success/failure/dismiss callbacks.
// PaymentID, OrderID and Signature are set only when Kind is approved;
// Reason only when declined.
type Outcome struct {
	Kind      OutcomeKind
	PaymentID string
	OrderID   string
	Signature string
	Reason    string
}

func Approved(paymentID, orderID, signature string) Outcome {
	return Outcome{Kind: OutcomeApproved, PaymentID: paymentID, OrderID: orderID, Signature: signature}
}

func Declined(reason string) Outcome {
	return Outcome{Kind: OutcomeDeclined, Reason: reason}
}

func Abandoned() Outcome {
	return Outcome{Kind: OutcomeAbandoned}
}
