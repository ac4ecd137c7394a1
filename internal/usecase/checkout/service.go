package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	domcart "example.com/trustylads/storefront/internal/domain/cart"
	domorder "example.com/trustylads/storefront/internal/domain/order"
	dompayment "example.com/trustylads/storefront/internal/domain/payment"
	"example.com/trustylads/storefront/internal/helpers"
)

type CartStore interface {
	Items(ctx context.Context, sessionID string) []domcart.Item
	Subtotal(ctx context.Context, sessionID string) int64
	ClearCart(ctx context.Context, sessionID string)
}

type Backend interface {
	CreateOrder(ctx context.Context, req domorder.CreateRequest) (string, error)
	CreateGatewayOrder(ctx context.Context, amount int64, orderID string, customer domorder.Customer) (*dompayment.GatewayOrder, error)
	VerifyGatewayPayment(ctx context.Context, paymentID, gatewayOrderID, signature, orderID string) error
}

type PostalLookup interface {
	Lookup(ctx context.Context, pinCode string) (city, state string, err error)
}

// Service runs the four-step checkout wizard, one flow per session.
// Pricing is recomputed from the live cart on every read; nothing is
// stored that could desync.
type Service struct {
	carts      CartStore
	backend    Backend
	postal     PostalLookup
	newOrderID func() string
	log        *slog.Logger

	mu    sync.Mutex
	flows map[string]*Flow
}

func NewService(carts CartStore, backend Backend, postal PostalLookup, log *slog.Logger) *Service {
	return &Service{
		carts:      carts,
		backend:    backend,
		postal:     postal,
		newOrderID: helpers.NewOrderID,
		log:        log,
		flows:      make(map[string]*Flow),
	}
}

// Start opens a new flow for the session, replacing any previous one.
// An empty cart never enters checkout: callers redirect to the cart view.
func (s *Service) Start(ctx context.Context, sessionID string) (*Flow, error) {
	if len(s.carts.Items(ctx, sessionID)) == 0 {
		return nil, domcart.ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	flow := newFlow(sessionID)
	s.flows[sessionID] = flow
	return s.snapshot(flow), nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (*Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrFlowNotFound
	}
	return s.snapshot(flow), nil
}

func (s *Service) flow(sessionID string) (*Flow, error) {
	flow, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrFlowNotFound
	}
	return flow, nil
}

// snapshot copies the flow so callers never share the locked state.
func (s *Service) snapshot(flow *Flow) *Flow {
	out := *flow
	if flow.Intent != nil {
		intent := *flow.Intent
		out.Intent = &intent
	}
	return &out
}

func (s *Service) SetContact(ctx context.Context, sessionID string, customer domorder.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.flow(sessionID)
	if err != nil {
		return err
	}
	flow.Data.Customer = customer
	return nil
}

// SetShipping records the address. A fully typed six-digit PIN code
// triggers a lookup that overwrites city and state on success; failures
// are logged and leave the fields untouched.
func (s *Service) SetShipping(ctx context.Context, sessionID string, shipping domorder.ShippingAddress) error {
	s.mu.Lock()
	flow, err := s.flow(sessionID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if shipping.Country == "" {
		shipping.Country = "India"
	}
	flow.Data.Shipping = shipping
	s.mu.Unlock()

	if len(shipping.PinCode) != 6 {
		return nil
	}
	city, state, err := s.postal.Lookup(ctx, shipping.PinCode)
	if err != nil {
		s.log.Warn("pincode lookup failed", "pinCode", shipping.PinCode, "error", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if flow, err := s.flow(sessionID); err == nil && flow.Data.Shipping.PinCode == shipping.PinCode {
		flow.Data.Shipping.City = city
		flow.Data.Shipping.State = state
	}
	return nil
}

func (s *Service) SetPaymentMethod(ctx context.Context, sessionID string, method domorder.PaymentMethod) error {
	if !method.IsValid() {
		return domorder.ErrInvalidPayment
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.flow(sessionID)
	if err != nil {
		return err
	}
	flow.Data.PaymentMethod = method
	return nil
}

// Next advances the wizard when the current step validates; otherwise the
// transition is rejected with the field messages.
func (s *Service) Next(ctx context.Context, sessionID string) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.flow(sessionID)
	if err != nil {
		return 0, err
	}
	if flow.Step >= StepReview {
		return flow.Step, nil
	}
	if fields := validateStep(flow); len(fields) > 0 {
		return flow.Step, &ValidationError{Step: flow.Step, Fields: fields}
	}
	flow.Step++
	return flow.Step, nil
}

// Back decrements the step; from the first step it exits the flow
// entirely and the caller returns to the cart.
func (s *Service) Back(ctx context.Context, sessionID string) (Step, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.flow(sessionID)
	if err != nil {
		return 0, false, err
	}
	if flow.Step <= StepContact {
		delete(s.flows, sessionID)
		return 0, true, nil
	}
	flow.Step--
	return flow.Step, false, nil
}

func validateStep(flow *Flow) map[string]string {
	switch flow.Step {
	case StepContact:
		return helpers.ValidateForm(map[string]string{
			"email": flow.Data.Customer.Email,
			"phone": flow.Data.Customer.Phone,
		}, map[string]helpers.Rule{
			"email": {Required: true, Email: true},
			"phone": {Required: true, Phone: true},
		})
	case StepShipping:
		return helpers.ValidateForm(map[string]string{
			"firstName": flow.Data.Shipping.FirstName,
			"address":   flow.Data.Shipping.Address,
			"city":      flow.Data.Shipping.City,
			"state":     flow.Data.Shipping.State,
			"pinCode":   flow.Data.Shipping.PinCode,
		}, map[string]helpers.Rule{
			"firstName": {Required: true},
			"address":   {Required: true},
			"city":      {Required: true},
			"state":     {Required: true},
			"pinCode":   {Required: true},
		})
	case StepPayment:
		if !flow.Data.PaymentMethod.IsValid() {
			return map[string]string{"paymentMethod": "a payment method is required"}
		}
	}
	return nil
}

// Summary recomputes the pricing breakdown from the live cart.
func (s *Service) Summary(ctx context.Context, sessionID string) domorder.Pricing {
	subtotal := s.carts.Subtotal(ctx, sessionID)
	shipping := helpers.CalculateShipping(subtotal)
	tax := helpers.CalculateTax(subtotal)
	return domorder.Pricing{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal + shipping + tax,
	}
}

// PlacementResult is either a completed order (OrderID set, cash on
// delivery and bank transfer) or a parked payment intent (Intent set,
// online gateway).
type PlacementResult struct {
	OrderID string
	Intent  *dompayment.GatewayOrder
}

// PlaceOrder submits from the review step. The in-flight flag blocks
// duplicate submission; on any failure the flag is cleared and the cart
// left intact so the user can retry.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string) (*PlacementResult, error) {
	s.mu.Lock()
	flow, err := s.flow(sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if flow.Complete() {
		s.mu.Unlock()
		return nil, ErrAlreadyComplete
	}
	if flow.InFlight {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if flow.Step != StepReview {
		s.mu.Unlock()
		return nil, ErrNotAtReview
	}
	flow.InFlight = true
	data := flow.Data
	s.mu.Unlock()

	items := s.carts.Items(ctx, sessionID)
	if len(items) == 0 {
		s.clearInFlight(sessionID)
		return nil, domcart.ErrEmptyCart
	}
	pricing := s.Summary(ctx, sessionID)

	if data.PaymentMethod == domorder.MethodRazorpay {
		return s.placeGatewayOrder(ctx, sessionID, data, pricing)
	}
	return s.placeDirectOrder(ctx, sessionID, data, items, pricing)
}

func (s *Service) placeDirectOrder(ctx context.Context, sessionID string, data Data, items []domcart.Item, pricing domorder.Pricing) (*PlacementResult, error) {
	req := buildCreateRequest(data, items, pricing)
	orderID, err := s.backend.CreateOrder(ctx, req)
	if err != nil {
		s.log.Warn("order placement failed", "session", sessionID, "error", err)
		s.clearInFlight(sessionID)
		return nil, fmt.Errorf("%w: %w", ErrOrderFailed, err)
	}

	s.carts.ClearCart(ctx, sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if flow, err := s.flow(sessionID); err == nil {
		flow.InFlight = false
		flow.Confirmation = orderID
	}
	return &PlacementResult{OrderID: orderID}, nil
}

func (s *Service) placeGatewayOrder(ctx context.Context, sessionID string, data Data, pricing domorder.Pricing) (*PlacementResult, error) {
	orderID := s.newOrderID()
	intent, err := s.backend.CreateGatewayOrder(ctx, pricing.Total, orderID, data.Customer)
	if err != nil {
		s.log.Warn("gateway order creation failed", "session", sessionID, "error", err)
		s.clearInFlight(sessionID)
		return nil, fmt.Errorf("%w: %w", ErrOrderFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	flow, ferr := s.flow(sessionID)
	if ferr != nil {
		return nil, ferr
	}
	// The flag stays set while the widget is open.
	flow.Intent = intent
	return &PlacementResult{Intent: s.snapshot(flow).Intent}, nil
}

// CompletePayment resumes an awaiting flow with the widget's terminal
// outcome. Only a verified approval clears the cart; declined, abandoned
// and failed verification leave it intact for retry.
func (s *Service) CompletePayment(ctx context.Context, sessionID string, outcome dompayment.Outcome) (string, error) {
	s.mu.Lock()
	flow, err := s.flow(sessionID)
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	if !flow.AwaitingPayment() {
		s.mu.Unlock()
		return "", ErrNoPaymentPending
	}
	intent := *flow.Intent
	s.mu.Unlock()

	fail := func(reason error) (string, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if flow, err := s.flow(sessionID); err == nil {
			flow.InFlight = false
			flow.Intent = nil
		}
		return "", reason
	}

	switch outcome.Kind {
	case dompayment.OutcomeApproved:
		if err := s.backend.VerifyGatewayPayment(ctx, outcome.PaymentID, outcome.OrderID, outcome.Signature, intent.Receipt); err != nil {
			s.log.Warn("payment verification failed", "session", sessionID, "receipt", intent.Receipt, "error", err)
			return fail(fmt.Errorf("%w: %w", dompayment.ErrVerificationFailed, err))
		}
	case dompayment.OutcomeDeclined:
		return fail(fmt.Errorf("%w: %s", dompayment.ErrPaymentDeclined, outcome.Reason))
	default:
		return fail(dompayment.ErrPaymentAbandoned)
	}

	s.carts.ClearCart(ctx, sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if flow, err := s.flow(sessionID); err == nil {
		flow.InFlight = false
		flow.Intent = nil
		flow.Confirmation = intent.Receipt
	}
	return intent.Receipt, nil
}

func (s *Service) clearInFlight(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if flow, err := s.flow(sessionID); err == nil {
		flow.InFlight = false
	}
}

func buildCreateRequest(data Data, items []domcart.Item, pricing domorder.Pricing) domorder.CreateRequest {
	orderItems := make([]domorder.Item, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domorder.Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Category:  item.Category,
		})
	}
	return domorder.CreateRequest{
		Customer:      data.Customer,
		Shipping:      data.Shipping,
		Items:         orderItems,
		PaymentMethod: data.PaymentMethod,
		Subtotal:      pricing.Subtotal,
		ShippingCost:  pricing.ShippingCost,
		Tax:           pricing.Tax,
		Total:         pricing.Total,
	}
}
