package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domorder "example.com/trustylads/storefront/internal/domain/order"
	adminuc "example.com/trustylads/storefront/internal/usecase/admin"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (a *API) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	token := a.authSvc.Token(r.Context(), getSessionID(r.Context()))
	stats, err := a.adminSvc.Stats(r.Context(), token)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (a *API) handleAdminOrders(w http.ResponseWriter, r *http.Request) {
	token := a.authSvc.Token(r.Context(), getSessionID(r.Context()))
	filter := adminuc.OrderFilter{
		Search: r.URL.Query().Get("search"),
		Status: domorder.Status(r.URL.Query().Get("status")),
	}
	orders, err := a.adminSvc.Orders(r.Context(), token, filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"total":  len(orders),
	})
}

func (a *API) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderStatusRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	token := a.authSvc.Token(r.Context(), getSessionID(r.Context()))
	orderID := chi.URLParam(r, "id")
	if err := a.adminSvc.UpdateOrderStatus(r.Context(), token, orderID, domorder.Status(req.Status)); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"orderId": orderID, "status": req.Status})
}

func (a *API) handleAdminProducts(w http.ResponseWriter, r *http.Request) {
	token := a.authSvc.Token(r.Context(), getSessionID(r.Context()))
	products, err := a.adminSvc.Products(r.Context(), token, r.URL.Query().Get("search"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	mapped := make([]map[string]any, 0, len(products))
	for _, p := range products {
		mapped = append(mapped, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products": mapped,
		"total":    len(mapped),
	})
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	token := a.authSvc.Token(r.Context(), getSessionID(r.Context()))
	productID := chi.URLParam(r, "id")
	if err := a.adminSvc.DeleteProduct(r.Context(), token, productID); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": productID})
}
