package catalog

import "time"

type Size struct {
	Size  string `json:"size"`
	Stock int64  `json:"stock"`
}

type Image struct {
	URL       string `json:"url"`
	Alt       string `json:"alt,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

type Product struct {
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"originalPrice,omitempty"`
	Category      string    `json:"category"`
	Sizes         []Size    `json:"sizes"`
	TotalStock    int64     `json:"totalStock"`
	Images        []Image   `json:"images"`
	Description   string    `json:"description"`
	Featured      bool      `json:"featured"`
	IsActive      bool      `json:"isActive"`
	Tags          []string  `json:"tags"`
	Rating        float64   `json:"rating"`
	ReviewCount   int64     `json:"reviewCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type SortOption string

const (
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortName      SortOption = "name"
	SortRating    SortOption = "rating"
	SortNewest    SortOption = "newest"
)

// ListFilter narrows and orders a product listing. Zero values mean no
// restriction; MaxPrice of zero disables the price ceiling.
type ListFilter struct {
	Search   string
	Category string
	MinPrice int64
	MaxPrice int64
	SortBy   SortOption
}
