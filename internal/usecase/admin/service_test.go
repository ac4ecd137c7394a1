package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domcatalog "example.com/trustylads/storefront/internal/domain/catalog"
	domorder "example.com/trustylads/storefront/internal/domain/order"
)

type mockBackend struct {
	lastToken   string
	lastSearch  string
	lastStatus  domorder.Status
	lastOrderID string
	deleted     []string
}

func (m *mockBackend) AdminStats(ctx context.Context, token string) (*domorder.Stats, error) {
	m.lastToken = token
	return &domorder.Stats{TotalOrders: 42, TotalRevenue: 123456}, nil
}

func (m *mockBackend) AdminOrders(ctx context.Context, token, search string, status domorder.Status) ([]domorder.Order, error) {
	m.lastToken, m.lastSearch, m.lastStatus = token, search, status
	return []domorder.Order{{OrderID: "TL1"}}, nil
}

func (m *mockBackend) UpdateOrderStatus(ctx context.Context, token, orderID string, status domorder.Status) error {
	m.lastToken, m.lastOrderID, m.lastStatus = token, orderID, status
	return nil
}

func (m *mockBackend) AdminProducts(ctx context.Context, token, search string) ([]domcatalog.Product, error) {
	m.lastToken, m.lastSearch = token, search
	return []domcatalog.Product{{ProductID: "p1"}}, nil
}

func (m *mockBackend) DeleteProduct(ctx context.Context, token, productID string) error {
	m.lastToken = token
	m.deleted = append(m.deleted, productID)
	return nil
}

func TestOrders_PassesFilterAndToken(t *testing.T) {
	backend := &mockBackend{}
	svc := NewService(backend)

	orders, err := svc.Orders(context.Background(), "tok", OrderFilter{Search: "arun", Status: domorder.StatusPending})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "tok", backend.lastToken)
	require.Equal(t, "arun", backend.lastSearch)
	require.Equal(t, domorder.StatusPending, backend.lastStatus)
}

func TestOrders_InvalidStatusRejected(t *testing.T) {
	svc := NewService(&mockBackend{})

	_, err := svc.Orders(context.Background(), "tok", OrderFilter{Status: domorder.Status("bogus")})
	require.ErrorIs(t, err, domorder.ErrInvalidStatus)
}

func TestUpdateOrderStatus(t *testing.T) {
	backend := &mockBackend{}
	svc := NewService(backend)

	require.NoError(t, svc.UpdateOrderStatus(context.Background(), "tok", "TL9", domorder.StatusShipped))
	require.Equal(t, "TL9", backend.lastOrderID)
	require.Equal(t, domorder.StatusShipped, backend.lastStatus)

	err := svc.UpdateOrderStatus(context.Background(), "tok", "TL9", domorder.Status("lost"))
	require.ErrorIs(t, err, domorder.ErrInvalidStatus)
}

func TestDeleteProduct(t *testing.T) {
	backend := &mockBackend{}
	svc := NewService(backend)

	require.NoError(t, svc.DeleteProduct(context.Background(), "tok", "p42"))
	require.Equal(t, []string{"p42"}, backend.deleted)
}
