package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
	"github.com/nordmart/storefront-backend/pkg/pagination"
)

const (
	// RelatedDefaultLimit applies when the related endpoint gets no limit.
	RelatedDefaultLimit = 8
	// RelatedMaxLimit caps the related carousel size.
	RelatedMaxLimit = 24
)

// categoryExpander resolves a category filter into its descendant set.
type categoryExpander interface {
	DescendantIDs(ctx context.Context, anchorID int64) ([]int64, error)
}

// Service exposes the product browse surface.
type Service interface {
	List(ctx context.Context, params ListParams) (*ProductList, error)
	Detail(ctx context.Context, productID int64) (*ProductDetail, error)
	Related(ctx context.Context, productID int64, limit int) ([]RelatedProduct, error)
}

type service struct {
	repo       *Repository
	categories categoryExpander
}

// NewService builds a product service with the required dependencies.
func NewService(repo *Repository, categories categoryExpander) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if categories == nil {
		return nil, fmt.Errorf("category expander required")
	}
	return &service{repo: repo, categories: categories}, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ProductList, error) {
	page := pagination.Normalize(params.Pagination)
	sort := NormalizeSort(params.Sort)

	filters := listingFilters{Search: params.Search}
	if anchor := params.FilterAnchor(); anchor != nil {
		ids, err := s.categories.DescendantIDs(ctx, *anchor)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			// unknown category still filters, it just matches nothing
			ids = []int64{*anchor}
		}
		filters.CategoryIDs = ids
	}

	total, err := s.repo.CountListing(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count products")
	}

	rows, err := s.repo.ListPage(ctx, filters, sort, page.Limit, page.Offset())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	images, err := s.repo.ImagesByProduct(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product images")
	}

	items := make([]ProductSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toSummary(images[row.ID]))
	}

	return &ProductList{
		Items:      items,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalItems: total,
		TotalPages: pagination.TotalPages(total, page.Limit),
	}, nil
}

func (s *service) Detail(ctx context.Context, productID int64) (*ProductDetail, error) {
	row, err := s.repo.FindRow(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	images, err := s.repo.ImagesByProduct(ctx, []int64{row.ID})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product images")
	}

	return row.toDetail(images[row.ID]), nil
}

func (s *service) Related(ctx context.Context, productID int64, limit int) ([]RelatedProduct, error) {
	limit = clampRelatedLimit(limit)

	categoryID, err := s.repo.PrimaryCategoryID(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve primary category")
	}
	if categoryID == nil {
		return []RelatedProduct{}, nil
	}

	rows, err := s.repo.ListRelated(ctx, *categoryID, productID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list related products")
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	images, err := s.repo.ImagesByProduct(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product images")
	}

	items := make([]RelatedProduct, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toRelated(images[row.ID]))
	}
	return items, nil
}

func clampRelatedLimit(limit int) int {
	if limit <= 0 {
		return RelatedDefaultLimit
	}
	if limit > RelatedMaxLimit {
		return RelatedMaxLimit
	}
	return limit
}

func (r productRow) toSummary(images []string) ProductSummary {
	if images == nil {
		images = []string{}
	}
	var cover *string
	if len(images) > 0 {
		cover = &images[0]
	}
	return ProductSummary{
		ID:                      r.ID,
		Name:                    r.Name,
		Description:             nullStringPtr(r.Description),
		Price:                   r.Price,
		AverageRating:           r.AverageRating,
		ReviewCount:             r.ReviewCount,
		Badge:                   nullStringPtr(r.Badge),
		PrimaryCategoryID:       nullIntPtr(r.PrimaryCategoryID),
		PrimaryCategoryName:     nullStringPtr(r.PrimaryCategoryName),
		PrimaryCategoryParentID: nullIntPtr(r.PrimaryCategoryParentID),
		Image:                   cover,
		Images:                  images,
	}
}

func (r productRow) toDetail(images []string) *ProductDetail {
	if images == nil {
		images = []string{}
	}
	return &ProductDetail{
		ID:                      r.ID,
		Name:                    r.Name,
		Description:             nullStringPtr(r.Description),
		Price:                   r.Price,
		AverageRating:           r.AverageRating,
		ReviewCount:             r.ReviewCount,
		Badge:                   nullStringPtr(r.Badge),
		PrimaryCategoryID:       nullIntPtr(r.PrimaryCategoryID),
		PrimaryCategoryName:     nullStringPtr(r.PrimaryCategoryName),
		PrimaryCategoryParentID: nullIntPtr(r.PrimaryCategoryParentID),
		Images:                  images,
	}
}

func (r productRow) toRelated(images []string) RelatedProduct {
	if images == nil {
		images = []string{}
	}
	return RelatedProduct{
		ID:            r.ID,
		Name:          r.Name,
		Description:   nullStringPtr(r.Description),
		Price:         r.Price,
		AverageRating: r.AverageRating,
		ReviewCount:   r.ReviewCount,
		Badge:         nullStringPtr(r.Badge),
		Images:        images,
	}
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}

func nullIntPtr(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}
	v := value.Int64
	return &v
}
