package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domcatalog "example.com/trustylads/storefront/internal/domain/catalog"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domcatalog.ListFilter{
		Search:   q.Get("q"),
		Category: q.Get("category"),
		SortBy:   domcatalog.SortOption(q.Get("sort")),
	}
	if v := q.Get("min"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.MinPrice = n
		}
	}
	if v := q.Get("max"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.MaxPrice = n
		}
	}

	products, err := a.catalogSvc.List(r.Context(), filter)
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

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := a.catalogSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(*product))
}
