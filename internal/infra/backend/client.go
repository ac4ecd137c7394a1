package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"example.com/trustylads/storefront/internal/domain/catalog"
	"example.com/trustylads/storefront/internal/domain/order"
	"example.com/trustylads/storefront/internal/domain/payment"
)

// Client talks to the commerce backend that owns orders, payments and the
// product catalog. One attempt per user action, no retries; the request
// timeout keeps a hung backend from pinning the checkout in-flight flag
// forever.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Body)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("backend request failed",
			"method", method, "path", path, "status", resp.StatusCode)
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
}

// CreateOrder submits an assembled order (the cash-on-delivery path) and
// returns the created order id.
func (c *Client) CreateOrder(ctx context.Context, req order.CreateRequest) (string, error) {
	var resp createOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", "", req, &resp); err != nil {
		return "", err
	}
	return resp.OrderID, nil
}

type createGatewayOrderRequest struct {
	Amount   int64          `json:"amount"`
	OrderID  string         `json:"orderId"`
	Customer order.Customer `json:"customer"`
}

type createGatewayOrderResponse struct {
	Order payment.GatewayOrder `json:"order"`
}

// CreateGatewayOrder requests a Razorpay order object for the given
// amount; the returned intent drives the hosted widget.
func (c *Client) CreateGatewayOrder(ctx context.Context, amount int64, orderID string, customer order.Customer) (*payment.GatewayOrder, error) {
	req := createGatewayOrderRequest{Amount: amount, OrderID: orderID, Customer: customer}
	var resp createGatewayOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/payments/razorpay/create", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

type verifyPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           string `json:"orderId"`
}

type verifyPaymentResponse struct {
	Verified bool `json:"verified"`
}

// VerifyGatewayPayment submits the widget's confirmation fields for
// signature verification. Only a verified response counts as success.
func (c *Client) VerifyGatewayPayment(ctx context.Context, paymentID, gatewayOrderID, signature, orderID string) error {
	req := verifyPaymentRequest{
		RazorpayPaymentID: paymentID,
		RazorpayOrderID:   gatewayOrderID,
		RazorpaySignature: signature,
		OrderID:           orderID,
	}
	var resp verifyPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/api/payments/razorpay/verify", "", req, &resp); err != nil {
		return err
	}
	if !resp.Verified {
		return payment.ErrVerificationFailed
	}
	return nil
}

type productsResponse struct {
	Products []catalog.Product `json:"products"`
}

func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var resp productsResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) AdminStats(ctx context.Context, token string) (*order.Stats, error) {
	var stats order.Stats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", token, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

type ordersResponse struct {
	Orders []order.Order `json:"orders"`
}

func (c *Client) AdminOrders(ctx context.Context, token, search string, status order.Status) ([]order.Order, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if status != "" {
		q.Set("status", string(status))
	}
	path := "/api/admin/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status order.Status) error {
	path := "/api/admin/orders/" + url.PathEscape(orderID) + "/status"
	return c.do(ctx, http.MethodPut, path, token, updateOrderStatusRequest{Status: string(status)}, nil)
}

func (c *Client) AdminProducts(ctx context.Context, token, search string) ([]catalog.Product, error) {
	path := "/api/admin/products"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}

	var resp productsResponse
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, productID string) error {
	path := "/api/admin/products/" + url.PathEscape(productID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
