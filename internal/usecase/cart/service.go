package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	domcart "example.com/trustylads/storefront/internal/domain/cart"
	"example.com/trustylads/storefront/internal/domain/storage"
)

const namespaceKey = "trustylads-cart"

type SnapshotRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Service is the cart store: one cart per storefront session, restored
// from the snapshot repository on first access and written through on
// every mutation. Storage failures degrade to an empty cart or a dropped
// write; they never reach mutation callers.
type Service struct {
	repo SnapshotRepository
	log  *slog.Logger

	mu    sync.Mutex
	carts map[string]*domcart.Cart
}

func NewService(repo SnapshotRepository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		log:   log,
		carts: make(map[string]*domcart.Cart),
	}
}

func key(sessionID string) string {
	return namespaceKey + ":" + sessionID
}

// cart returns the session's live cart, restoring it from storage the
// first time the session is seen. Callers must hold s.mu.
func (s *Service) cart(ctx context.Context, sessionID string) *domcart.Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	c := &domcart.Cart{}
	data, err := s.repo.Load(ctx, key(sessionID))
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// First visit, start empty.
	case err != nil:
		s.log.Warn("cart snapshot load failed", "session", sessionID, "error", err)
	default:
		if err := json.Unmarshal(data, c); err != nil {
			s.log.Warn("cart snapshot corrupt, starting empty", "session", sessionID, "error", err)
			c = &domcart.Cart{}
		}
	}
	s.carts[sessionID] = c
	return c
}

func (s *Service) persist(ctx context.Context, sessionID string, c *domcart.Cart) {
	data, err := json.Marshal(c)
	if err != nil {
		s.log.Warn("cart snapshot encode failed", "session", sessionID, "error", err)
		return
	}
	if err := s.repo.Save(ctx, key(sessionID), data); err != nil {
		s.log.Warn("cart snapshot save failed", "session", sessionID, "error", err)
	}
}

func (s *Service) AddItem(ctx context.Context, sessionID string, item domcart.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ctx, sessionID)
	c.Add(item)
	s.persist(ctx, sessionID, c)
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID, size string, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ctx, sessionID)
	c.SetQuantity(productID, size, quantity)
	s.persist(ctx, sessionID, c)
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ctx, sessionID)
	c.Remove(productID, size)
	s.persist(ctx, sessionID, c)
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ctx, sessionID)
	c.Clear()
	s.persist(ctx, sessionID, c)
}

func (s *Service) OpenCart(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ctx, sessionID)
	c.Open()
	s.persist(ctx, sessionID, c)
}

func (s *Service) CloseCart(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ctx, sessionID)
	c.Close()
	s.persist(ctx, sessionID, c)
}

// GetCart returns a copy of the session's cart.
func (s *Service) GetCart(ctx context.Context, sessionID string) domcart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ctx, sessionID)
	out := domcart.Cart{IsOpen: c.IsOpen}
	out.Items = make([]domcart.Item, len(c.Items))
	copy(out.Items, c.Items)
	return out
}

func (s *Service) Items(ctx context.Context, sessionID string) []domcart.Item {
	return s.GetCart(ctx, sessionID).Items
}

func (s *Service) ItemsCount(ctx context.Context, sessionID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(ctx, sessionID).ItemsCount()
}

func (s *Service) Subtotal(ctx context.Context, sessionID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(ctx, sessionID).Subtotal()
}
