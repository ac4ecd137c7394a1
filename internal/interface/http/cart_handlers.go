package http

import (
	"net/http"

	domcart "example.com/trustylads/storefront/internal/domain/cart"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Price     int64  `json:"price" validate:"required,gt=0"`
	Size      string `json:"size" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	MaxStock  int64  `json:"maxStock" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int64  `json:"quantity"`
}

type removeCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	cart := a.cartSvc.GetCart(r.Context(), sessionID)
	writeJSON(w, http.StatusOK, mapCart(cart))
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := getSessionID(r.Context())
	a.cartSvc.AddItem(r.Context(), sessionID, domcart.Item{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Size:      req.Size,
		Quantity:  req.Quantity,
		Image:     req.Image,
		Category:  req.Category,
		MaxStock:  req.MaxStock,
	})
	writeJSON(w, http.StatusCreated, mapCart(a.cartSvc.GetCart(r.Context(), sessionID)))
}

func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := getSessionID(r.Context())
	a.cartSvc.UpdateQuantity(r.Context(), sessionID, req.ProductID, req.Size, req.Quantity)
	writeJSON(w, http.StatusOK, mapCart(a.cartSvc.GetCart(r.Context(), sessionID)))
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	var req removeCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := getSessionID(r.Context())
	a.cartSvc.RemoveItem(r.Context(), sessionID, req.ProductID, req.Size)
	writeJSON(w, http.StatusOK, mapCart(a.cartSvc.GetCart(r.Context(), sessionID)))
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	a.cartSvc.ClearCart(r.Context(), sessionID)
	writeJSON(w, http.StatusOK, mapCart(a.cartSvc.GetCart(r.Context(), sessionID)))
}

func (a *API) handleOpenCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	a.cartSvc.OpenCart(r.Context(), sessionID)
	writeJSON(w, http.StatusOK, mapCart(a.cartSvc.GetCart(r.Context(), sessionID)))
}

func (a *API) handleCloseCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	a.cartSvc.CloseCart(r.Context(), sessionID)
	writeJSON(w, http.StatusOK, mapCart(a.cartSvc.GetCart(r.Context(), sessionID)))
}
