package catalog

import (
	"context"
	"sort"
	"strings"

	domcatalog "example.com/trustylads/storefront/internal/domain/catalog"
)

type Backend interface {
	ListProducts(ctx context.Context) ([]domcatalog.Product, error)
}

// Service serves the shop listing: products come from the backend, the
// search/category/price filters and sorting are applied in-process the
// way the shop page does.
type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

func (s *Service) List(ctx context.Context, filter domcatalog.ListFilter) ([]domcatalog.Product, error) {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domcatalog.Product, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		if filter.Search != "" && !matchesSearch(p, filter.Search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, filter.SortBy)
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, productID string) (*domcatalog.Product, error) {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ProductID == productID {
			return &products[i], nil
		}
	}
	return nil, domcatalog.ErrProductNotFound
}

func matchesSearch(p domcatalog.Product, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []domcatalog.Product, by domcatalog.SortOption) {
	switch by {
	case domcatalog.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case domcatalog.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case domcatalog.SortName:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case domcatalog.SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case domcatalog.SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}
