package gateway

import (
	"example.com/trustylads/storefront/internal/domain/order"
	"example.com/trustylads/storefront/internal/domain/payment"
)

// ScriptURL is the fixed CDN location of the hosted checkout widget.
const ScriptURL = "https://checkout.razorpay.com/v1/checkout.js"

// WidgetOptions is the configuration handed to the hosted Razorpay
// widget. The storefront builds it from the payment intent and checkout
// data; the widget's terminal result comes back as a payment.Outcome.
type WidgetOptions struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
	Notes       Notes   `json:"notes"`
	Theme       Theme   `json:"theme"`
	ScriptURL   string  `json:"script_url"`
}

type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type Notes struct {
	Address string `json:"address"`
}

type Theme struct {
	Color string `json:"color"`
}

// BuildWidgetOptions prefills the widget with contact info from the
// checkout data, mirroring what the storefront shows at the payment step.
func BuildWidgetOptions(keyID string, gw *payment.GatewayOrder, customer order.Customer, shipping order.ShippingAddress) WidgetOptions {
	currency := gw.Currency
	if currency == "" {
		currency = "INR"
	}
	name := shipping.FirstName
	if shipping.LastName != "" {
		name += " " + shipping.LastName
	}
	return WidgetOptions{
		Key:         keyID,
		Amount:      gw.Amount,
		Currency:    currency,
		Name:        "TrustyLads",
		Description: "Order #" + gw.Receipt,
		Image:       "/logo.png",
		OrderID:     gw.ID,
		Prefill: Prefill{
			Name:    name,
			Email:   customer.Email,
			Contact: customer.Phone,
		},
		Notes:     Notes{Address: shipping.Address},
		Theme:     Theme{Color: "#FFE135"},
		ScriptURL: ScriptURL,
	}
}

// ParseCallback maps the widget callback payload to the three-variant
// outcome. An approved payload must carry all three confirmation fields;
// anything incomplete is treated as abandoned.
func ParseCallback(status, paymentID, orderID, signature, reason string) payment.Outcome {
	switch status {
	case "approved":
		if paymentID == "" || orderID == "" || signature == "" {
			return payment.Abandoned()
		}
		return payment.Approved(paymentID, orderID, signature)
	case "declined":
		return payment.Declined(reason)
	default:
		return payment.Abandoned()
	}
}
