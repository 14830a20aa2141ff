package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/nordmart/storefront-backend/pkg/db/models"
)

// Repository exposes order persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// PricesByProductID resolves current unit prices for the requested products.
// Missing products are simply absent from the map.
func (r *Repository) PricesByProductID(ctx context.Context, productIDs []int64) (map[int64]float64, error) {
	if len(productIDs) == 0 {
		return map[int64]float64{}, nil
	}

	var rows []struct {
		ID    int64
		Price float64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("id, price").
		Where("id IN ?", productIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	prices := make(map[int64]float64, len(rows))
	for _, row := range rows {
		prices[row.ID] = row.Price
	}
	return prices, nil
}

// InsertOrder persists the order header row.
func (r *Repository) InsertOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Create(order).Error
}

// InsertItems persists the order's line items.
func (r *Repository) InsertItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
