package http

import (
	"net/http"

	domorder "example.com/trustylads/storefront/internal/domain/order"
	"example.com/trustylads/storefront/internal/infra/gateway"
)

type contactRequest struct {
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Name  string `json:"name"`
}

type shippingRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Address   string `json:"address"`
	Apartment string `json:"apartment"`
	City      string `json:"city"`
	State     string `json:"state"`
	PinCode   string `json:"pinCode"`
	Country   string `json:"country"`
}

type paymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type paymentResultRequest struct {
	Status            string `json:"status" validate:"required,oneof=approved declined abandoned"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	Reason            string `json:"reason"`
}

func (a *API) handleStartCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	flow, err := a.checkoutSvc.Start(r.Context(), sessionID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a.mapFlow(r, flow))
}

func (a *API) handleGetCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	flow, err := a.checkoutSvc.Get(r.Context(), sessionID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapFlow(r, flow))
}

func (a *API) handleSetContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := getSessionID(r.Context())
	err := a.checkoutSvc.SetContact(r.Context(), sessionID, domorder.Customer{
		Email: req.Email,
		Phone: req.Phone,
		Name:  req.Name,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (a *API) handleSetShipping(w http.ResponseWriter, r *http.Request) {
	var req shippingRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := getSessionID(r.Context())
	err := a.checkoutSvc.SetShipping(r.Context(), sessionID, domorder.ShippingAddress{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Address:   req.Address,
		Apartment: req.Apartment,
		City:      req.City,
		State:     req.State,
		PinCode:   req.PinCode,
		Country:   req.Country,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	// City/state may have been autofilled from the PIN code.
	flow, err := a.checkoutSvc.Get(r.Context(), sessionID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"shipping": flow.Data.Shipping})
}

func (a *API) handleSetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req paymentMethodRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := getSessionID(r.Context())
	err := a.checkoutSvc.SetPaymentMethod(r.Context(), sessionID, domorder.PaymentMethod(req.PaymentMethod))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (a *API) handleCheckoutNext(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	step, err := a.checkoutSvc.Next(r.Context(), sessionID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"step": int(step), "stepName": step.String()})
}

func (a *API) handleCheckoutBack(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	step, exited, err := a.checkoutSvc.Back(r.Context(), sessionID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	if exited {
		writeJSON(w, http.StatusOK, map[string]any{"exited": true, "redirect": "/cart"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"step": int(step), "stepName": step.String()})
}

func (a *API) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	result, err := a.checkoutSvc.PlaceOrder(r.Context(), sessionID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	if result.Intent != nil {
		flow, ferr := a.checkoutSvc.Get(r.Context(), sessionID)
		if ferr != nil {
			handleDomainError(w, ferr)
			return
		}
		options := gateway.BuildWidgetOptions(a.razorpayKeyID, result.Intent, flow.Data.Customer, flow.Data.Shipping)
		writeJSON(w, http.StatusAccepted, map[string]any{
			"awaitingPayment": true,
			"intent":          result.Intent,
			"widget":          options,
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"orderId":  result.OrderID,
		"redirect": "/order-success/" + result.OrderID,
	})
}

func (a *API) handlePaymentResult(w http.ResponseWriter, r *http.Request) {
	var req paymentResultRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	outcome := gateway.ParseCallback(req.Status, req.RazorpayPaymentID, req.RazorpayOrderID, req.RazorpaySignature, req.Reason)

	sessionID := getSessionID(r.Context())
	receipt, err := a.checkoutSvc.CompletePayment(r.Context(), sessionID, outcome)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"orderId":  receipt,
		"redirect": "/order-success/" + receipt,
	})
}
