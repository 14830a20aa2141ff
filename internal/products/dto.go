package products

import (
	"strings"

	"github.com/nordmart/storefront-backend/pkg/pagination"
)

// Sort names accepted by the listing endpoint.
const (
	SortPopular   = "popular"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

// NormalizeSort coerces unknown sort values to the default.
func NormalizeSort(sort string) string {
	switch strings.TrimSpace(sort) {
	case SortPriceAsc, SortPriceDesc, SortNewest:
		return strings.TrimSpace(sort)
	default:
		return SortPopular
	}
}

// ListParams captures the filter/pagination state for the browse endpoint.
// SubcategoryID takes precedence over CategoryID as the filter anchor.
type ListParams struct {
	Pagination    pagination.Params
	Sort          string
	Search        string
	CategoryID    *int64
	SubcategoryID *int64
}

// FilterAnchor returns the category id the listing filters on, if any.
func (p ListParams) FilterAnchor() *int64 {
	if p.SubcategoryID != nil {
		return p.SubcategoryID
	}
	return p.CategoryID
}

// ProductSummary is a listing row with its primary category and images.
type ProductSummary struct {
	ID                      int64    `json:"id"`
	Name                    string   `json:"name"`
	Description             *string  `json:"description"`
	Price                   float64  `json:"price"`
	AverageRating           float64  `json:"average_rating"`
	ReviewCount             int      `json:"review_count"`
	Badge                   *string  `json:"badge"`
	PrimaryCategoryID       *int64   `json:"primary_category_id"`
	PrimaryCategoryName     *string  `json:"primary_category_name"`
	PrimaryCategoryParentID *int64   `json:"primary_category_parent_id"`
	Image                   *string  `json:"image"`
	Images                  []string `json:"images"`
}

// ProductList is the page envelope returned by the listing endpoint.
type ProductList struct {
	Items      []ProductSummary `json:"items"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalItems int64            `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
}

// ProductDetail is the single-product shape with the full image list.
type ProductDetail struct {
	ID                      int64    `json:"id"`
	Name                    string   `json:"name"`
	Description             *string  `json:"description"`
	Price                   float64  `json:"price"`
	AverageRating           float64  `json:"average_rating"`
	ReviewCount             int      `json:"review_count"`
	Badge                   *string  `json:"badge"`
	PrimaryCategoryID       *int64   `json:"primary_category_id"`
	PrimaryCategoryName     *string  `json:"primary_category_name"`
	PrimaryCategoryParentID *int64   `json:"primary_category_parent_id"`
	Images                  []string `json:"images"`
}

// RelatedProduct is a same-primary-category row for the related carousel.
type RelatedProduct struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	Price         float64  `json:"price"`
	AverageRating float64  `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
	Badge         *string  `json:"badge"`
	Images        []string `json:"images"`
}
