package products

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"

	"github.com/nordmart/storefront-backend/pkg/db/models"
)

// Repository exposes product read operations for the browse surface.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// listingFilters carries the resolved filter state for a listing query. The
// category anchor has already been expanded into the full descendant set.
type listingFilters struct {
	Search      string
	CategoryIDs []int64
}

func (r *Repository) applyListingFilters(qb *gorm.DB, filters listingFilters) *gorm.DB {
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(p.name) LIKE ? OR LOWER(p.description) LIKE ?)", pattern, pattern)
	}
	if len(filters.CategoryIDs) > 0 {
		// any category link counts, not just the primary one
		qb = qb.Where(`EXISTS (
			SELECT 1 FROM product_categories pc2
			WHERE pc2.product_id = p.id AND pc2.category_id IN (?)
		)`, filters.CategoryIDs)
	}
	return qb
}

// CountListing returns the total number of products matching the filters.
func (r *Repository) CountListing(ctx context.Context, filters listingFilters) (int64, error) {
	var total int64
	qb := r.db.WithContext(ctx).Table("products p")
	qb = r.applyListingFilters(qb, filters)
	if err := qb.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

type productRow struct {
	ID                      int64
	Name                    string
	Description             sql.NullString
	Price                   float64
	AverageRating           float64
	ReviewCount             int
	Badge                   sql.NullString
	PrimaryCategoryID       sql.NullInt64
	PrimaryCategoryName     sql.NullString
	PrimaryCategoryParentID sql.NullInt64
}

const productRowSelect = `p.id, p.name, p.description, p.price, p.average_rating, p.review_count, p.badge,
pc.category_id AS primary_category_id,
c.name AS primary_category_name,
c.parent_id AS primary_category_parent_id`

// ListPage fetches one page of listing rows in the requested sort order.
func (r *Repository) ListPage(ctx context.Context, filters listingFilters, sort string, limit, offset int) ([]productRow, error) {
	qb := r.db.WithContext(ctx).
		Table("products p").
		Select(productRowSelect).
		Joins("LEFT JOIN product_categories pc ON pc.product_id = p.id AND pc.is_primary = ?", true).
		Joins("LEFT JOIN categories c ON c.id = pc.category_id")

	qb = r.applyListingFilters(qb, filters)
	qb = qb.Order(orderClause(sort)).Limit(limit).Offset(offset)

	var rows []productRow
	if err := qb.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// orderClause maps a normalized sort name onto a deterministic ORDER BY.
// The trailing id ASC breaks ties so pages never shuffle between requests.
func orderClause(sort string) string {
	switch sort {
	case SortPriceAsc:
		return "p.price ASC, p.id ASC"
	case SortPriceDesc:
		return "p.price DESC, p.id ASC"
	case SortNewest:
		return "p.created_at DESC, p.id ASC"
	default:
		return "p.review_count DESC, p.average_rating DESC, p.id ASC"
	}
}

// FindRow loads a single product with its primary category columns.
func (r *Repository) FindRow(ctx context.Context, id int64) (*productRow, error) {
	var row productRow
	err := r.db.WithContext(ctx).
		Table("products p").
		Select(productRowSelect).
		Joins("LEFT JOIN product_categories pc ON pc.product_id = p.id AND pc.is_primary = ?", true).
		Joins("LEFT JOIN categories c ON c.id = pc.category_id").
		Where("p.id = ?", id).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// ImagesByProduct loads the ordered image paths for the given products. The
// first entry per product is the cover (is_primary DESC, sort_order ASC, id ASC).
func (r *Repository) ImagesByProduct(ctx context.Context, productIDs []int64) (map[int64][]string, error) {
	images := make(map[int64][]string, len(productIDs))
	if len(productIDs) == 0 {
		return images, nil
	}

	var rows []models.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id IN (?)", productIDs).
		Order("product_id ASC, is_primary DESC, sort_order ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		images[row.ProductID] = append(images[row.ProductID], row.ImagePath)
	}
	return images, nil
}

// PrimaryCategoryID returns the canonical category link for a product, or nil
// when the product has no primary link.
func (r *Repository) PrimaryCategoryID(ctx context.Context, productID int64) (*int64, error) {
	var link models.ProductCategory
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_primary = ?", productID, true).
		Limit(1).
		Find(&link).Error
	if err != nil {
		return nil, err
	}
	if link.CategoryID == 0 {
		return nil, nil
	}
	return &link.CategoryID, nil
}

// ListRelated returns products sharing the primary category, excluding the
// product itself, ordered like the popular listing.
func (r *Repository) ListRelated(ctx context.Context, categoryID, excludeProductID int64, limit int) ([]productRow, error) {
	var rows []productRow
	err := r.db.WithContext(ctx).
		Table("products p").
		Select("p.id, p.name, p.description, p.price, p.average_rating, p.review_count, p.badge").
		Joins("JOIN product_categories pc ON pc.product_id = p.id AND pc.is_primary = ?", true).
		Where("pc.category_id = ? AND p.id != ?", categoryID, excludeProductID).
		Order("p.review_count DESC, p.average_rating DESC, p.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
