package order

import "time"

// The backend owns orders; this package only describes the contract
// crossing the boundary: the creation request we assemble and the order
// document we read back.

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusReturned   Status = "returned"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodRazorpay     PaymentMethod = "razorpay"
	MethodCOD          PaymentMethod = "cod"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case MethodRazorpay, MethodCOD, MethodBankTransfer:
		return true
	default:
		return false
	}
}

type Customer struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company,omitempty"`
	Address   string `json:"address"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	PinCode   string `json:"pinCode"`
	Country   string `json:"country"`
}

type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
	Image     string `json:"image"`
	Category  string `json:"category"`
}

// Pricing is the computed breakdown submitted with an order. It is
// recomputed from cart state, never stored client-side.
type Pricing struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shippingCost"`
	Tax          int64 `json:"tax"`
	Total        int64 `json:"total"`
}

type StatusHistoryEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

type Order struct {
	OrderID       string               `json:"orderId"`
	Customer      Customer             `json:"customer"`
	Shipping      ShippingAddress      `json:"shipping"`
	Items         []Item               `json:"items"`
	PaymentMethod PaymentMethod        `json:"paymentMethod"`
	PaymentStatus PaymentStatus        `json:"paymentStatus"`
	OrderStatus   Status               `json:"orderStatus"`
	TrackingID    string               `json:"trackingId,omitempty"`
	Pricing       Pricing              `json:"pricing"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// CreateRequest is the payload posted to the order-creation endpoint.
type CreateRequest struct {
	Customer      Customer        `json:"customer"`
	Shipping      ShippingAddress `json:"shipping"`
	Items         []Item          `json:"items"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Subtotal      int64           `json:"subtotal"`
	ShippingCost  int64           `json:"shippingCost"`
	Tax           int64           `json:"tax"`
	Total         int64           `json:"total"`
}
