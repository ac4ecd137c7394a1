package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/trustylads/storefront/internal/domain/order"
	"example.com/trustylads/storefront/internal/domain/payment"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateOrder_PostsPayloadAndReturnsID(t *testing.T) {
	var got order.CreateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"orderId": "TL123456001"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, discardLogger())
	req := order.CreateRequest{
		Customer:      order.Customer{Email: "user@example.com", Phone: "9876543210"},
		PaymentMethod: order.MethodCOD,
		Subtotal:      998,
		ShippingCost:  99,
		Tax:           180,
		Total:         1277,
	}

	orderID, err := client.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "TL123456001", orderID)
	require.Equal(t, order.MethodCOD, got.PaymentMethod)
	require.Equal(t, int64(1277), got.Total)
}

func TestCreateOrder_Non2xxIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "out of stock", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, discardLogger())
	_, err := client.CreateOrder(context.Background(), order.CreateRequest{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
}

func TestCreateGatewayOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payments/razorpay/create", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, float64(1180), body["amount"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"order": payment.GatewayOrder{ID: "rzp_1", Receipt: "TL123", Amount: 1180, Currency: "INR"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, discardLogger())
	gw, err := client.CreateGatewayOrder(context.Background(), 1180, "TL123", order.Customer{Email: "a@b.co"})
	require.NoError(t, err)
	require.Equal(t, "rzp_1", gw.ID)
	require.Equal(t, "TL123", gw.Receipt)
}

func TestVerifyGatewayPayment(t *testing.T) {
	verified := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payments/razorpay/verify", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "pay_1", body["razorpay_payment_id"])
		require.Equal(t, "TL123", body["orderId"])
		_ = json.NewEncoder(w).Encode(map[string]bool{"verified": verified})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, discardLogger())
	err := client.VerifyGatewayPayment(context.Background(), "pay_1", "rzp_1", "sig", "TL123")
	require.NoError(t, err)

	verified = false
	err = client.VerifyGatewayPayment(context.Background(), "pay_1", "rzp_1", "sig", "TL123")
	require.ErrorIs(t, err, payment.ErrVerificationFailed)
}

func TestAdminOrders_SendsTokenAndFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "shirt", r.URL.Query().Get("search"))
		require.Equal(t, "pending", r.URL.Query().Get("status"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"orders": []order.Order{{OrderID: "TL1", OrderStatus: order.StatusPending}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, discardLogger())
	orders, err := client.AdminOrders(context.Background(), "tok", "shirt", order.StatusPending)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "TL1", orders[0].OrderID)
}

func TestUpdateOrderStatusAndDeleteProduct_Paths(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, discardLogger())

	require.NoError(t, client.UpdateOrderStatus(context.Background(), "tok", "TL9", order.StatusShipped))
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/api/admin/orders/TL9/status", gotPath)

	require.NoError(t, client.DeleteProduct(context.Background(), "tok", "p42"))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/api/admin/products/p42", gotPath)
}
