package admin

import (
	"context"

	domcatalog "example.com/trustylads/storefront/internal/domain/catalog"
	domorder "example.com/trustylads/storefront/internal/domain/order"
)

type Backend interface {
	AdminStats(ctx context.Context, token string) (*domorder.Stats, error)
	AdminOrders(ctx context.Context, token, search string, status domorder.Status) ([]domorder.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status domorder.Status) error
	AdminProducts(ctx context.Context, token, search string) ([]domcatalog.Product, error)
	DeleteProduct(ctx context.Context, token, productID string) error
}

// Service proxies the admin dashboard to the backend admin API. The
// session token rides along on every call; the backend is the real
// authority on whether it is accepted.
type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

func (s *Service) Stats(ctx context.Context, token string) (*domorder.Stats, error) {
	return s.backend.AdminStats(ctx, token)
}

type OrderFilter struct {
	Search string
	Status domorder.Status
}

func (s *Service) Orders(ctx context.Context, token string, filter OrderFilter) ([]domorder.Order, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domorder.ErrInvalidStatus
	}
	return s.backend.AdminOrders(ctx, token, filter.Search, filter.Status)
}

func (s *Service) UpdateOrderStatus(ctx context.Context, token, orderID string, status domorder.Status) error {
	if !status.IsValid() {
		return domorder.ErrInvalidStatus
	}
	return s.backend.UpdateOrderStatus(ctx, token, orderID, status)
}

func (s *Service) Products(ctx context.Context, token, search string) ([]domcatalog.Product, error) {
	return s.backend.AdminProducts(ctx, token, search)
}

func (s *Service) DeleteProduct(ctx context.Context, token, productID string) error {
	return s.backend.DeleteProduct(ctx, token, productID)
}
