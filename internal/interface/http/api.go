package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/trustylads/storefront/internal/domain/cart"
	domcatalog "example.com/trustylads/storefront/internal/domain/catalog"
	domorder "example.com/trustylads/storefront/internal/domain/order"
	dompayment "example.com/trustylads/storefront/internal/domain/payment"
	domsession "example.com/trustylads/storefront/internal/domain/session"
	"example.com/trustylads/storefront/internal/infra/backend"
	adminuc "example.com/trustylads/storefront/internal/usecase/admin"
	authuc "example.com/trustylads/storefront/internal/usecase/auth"
	cartuc "example.com/trustylads/storefront/internal/usecase/cart"
	cataloguc "example.com/trustylads/storefront/internal/usecase/catalog"
	checkoutuc "example.com/trustylads/storefront/internal/usecase/checkout"
)

type API struct {
	authSvc       *authuc.Service
	cartSvc       *cartuc.Service
	checkoutSvc   *checkoutuc.Service
	catalogSvc    *cataloguc.Service
	adminSvc      *adminuc.Service
	validator     *validator.Validate
	razorpayKeyID string
}

type Dependencies struct {
	AuthService     *authuc.Service
	CartService     *cartuc.Service
	CheckoutService *checkoutuc.Service
	CatalogService  *cataloguc.Service
	AdminService    *adminuc.Service
	RazorpayKeyID   string
}

func NewAPI(deps Dependencies) *API {
	return &API{
		authSvc:       deps.AuthService,
		cartSvc:       deps.CartService,
		checkoutSvc:   deps.CheckoutService,
		catalogSvc:    deps.CatalogService,
		adminSvc:      deps.AdminService,
		validator:     validator.New(),
		razorpayKeyID: deps.RazorpayKeyID,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)

		r.Group(func(sr chi.Router) {
			sr.Use(a.sessionMiddleware)

			sr.Post("/auth/login", a.handleAdminLogin)
			sr.Post("/auth/logout", a.handleLogout)

			sr.Route("/cart", func(cr chi.Router) {
				cr.Get("/", a.handleGetCart)
				cr.Post("/items", a.handleAddCartItem)
				cr.Put("/items", a.handleUpdateCartItem)
				cr.Delete("/items", a.handleRemoveCartItem)
				cr.Delete("/", a.handleClearCart)
				cr.Post("/open", a.handleOpenCart)
				cr.Post("/close", a.handleCloseCart)
			})

			sr.Route("/checkout", func(cr chi.Router) {
				cr.Post("/", a.handleStartCheckout)
				cr.Get("/", a.handleGetCheckout)
				cr.Put("/contact", a.handleSetContact)
				cr.Put("/shipping", a.handleSetShipping)
				cr.Put("/payment-method", a.handleSetPaymentMethod)
				cr.Post("/next", a.handleCheckoutNext)
				cr.Post("/back", a.handleCheckoutBack)
				cr.Post("/place", a.handlePlaceOrder)
				cr.Post("/payment-result", a.handlePaymentResult)
			})

			sr.Group(func(ar chi.Router) {
				ar.Use(a.requireAuthenticated)

				ar.Route("/admin", func(admin chi.Router) {
					admin.Get("/stats", a.handleAdminStats)
					admin.Get("/orders", a.handleAdminOrders)
					admin.Put("/orders/{id}/status", a.handleUpdateOrderStatus)
					admin.Get("/products", a.handleAdminProducts)
					admin.Delete("/products/{id}", a.handleDeleteProduct)
				})
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error    string `json:"error"`
	Details  any    `json:"details,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapCart(c domcart.Cart) map[string]any {
	items := make([]map[string]any, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, map[string]any{
			"productId": item.ProductID,
			"name":      item.Name,
			"price":     item.Price,
			"size":      item.Size,
			"quantity":  item.Quantity,
			"image":     item.Image,
			"category":  item.Category,
			"maxStock":  item.MaxStock,
		})
	}
	return map[string]any{
		"items":      items,
		"isOpen":     c.IsOpen,
		"itemsCount": c.ItemsCount(),
		"subtotal":   c.Subtotal(),
	}
}

func mapPricing(p domorder.Pricing) map[string]any {
	return map[string]any{
		"subtotal":     p.Subtotal,
		"shippingCost": p.ShippingCost,
		"tax":          p.Tax,
		"total":        p.Total,
	}
}

func (a *API) mapFlow(r *http.Request, flow *checkoutuc.Flow) map[string]any {
	return map[string]any{
		"step":            int(flow.Step),
		"stepName":        flow.Step.String(),
		"customer":        flow.Data.Customer,
		"shipping":        flow.Data.Shipping,
		"paymentMethod":   flow.Data.PaymentMethod,
		"inFlight":        flow.InFlight,
		"awaitingPayment": flow.AwaitingPayment(),
		"confirmation":    flow.Confirmation,
		"pricing":         mapPricing(a.checkoutSvc.Summary(r.Context(), flow.SessionID)),
	}
}

func mapProduct(p domcatalog.Product) map[string]any {
	return map[string]any{
		"productId":     p.ProductID,
		"name":          p.Name,
		"price":         p.Price,
		"originalPrice": p.OriginalPrice,
		"category":      p.Category,
		"sizes":         p.Sizes,
		"totalStock":    p.TotalStock,
		"images":        p.Images,
		"description":   p.Description,
		"featured":      p.Featured,
		"tags":          p.Tags,
		"rating":        p.Rating,
		"reviewCount":   p.ReviewCount,
		"createdAt":     p.CreatedAt,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	var verr *checkoutuc.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Details: verr.Fields})
		return
	}

	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity:
			respondError(w, statusErr.Code, err)
		default:
			respondError(w, http.StatusBadGateway, err)
		}
		return
	}

	switch {
	case errors.Is(err, domcart.ErrEmptyCart):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Redirect: "/cart"})
	case errors.Is(err, checkoutuc.ErrFlowNotFound),
		errors.Is(err, domcatalog.ErrProductNotFound),
		errors.Is(err, domorder.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, checkoutuc.ErrSubmissionInFlight),
		errors.Is(err, checkoutuc.ErrNotAtReview),
		errors.Is(err, checkoutuc.ErrNoPaymentPending),
		errors.Is(err, checkoutuc.ErrAlreadyComplete):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domorder.ErrInvalidPayment),
		errors.Is(err, domorder.ErrInvalidStatus):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, dompayment.ErrVerificationFailed),
		errors.Is(err, dompayment.ErrPaymentDeclined),
		errors.Is(err, dompayment.ErrPaymentAbandoned):
		respondError(w, http.StatusPaymentRequired, err)
	case errors.Is(err, domsession.ErrInvalidCredential):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, checkoutuc.ErrOrderFailed):
		respondError(w, http.StatusBadGateway, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
