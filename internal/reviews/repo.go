package reviews

import (
	"context"

	"gorm.io/gorm"

	"github.com/nordmart/storefront-backend/pkg/db/models"
)

// Repository exposes review persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a reviews repository bound to the provided DB.
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

// InsertReview persists a new review row.
func (r *Repository) InsertReview(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// AggregateForProduct recomputes the rating aggregates from all reviews.
func (r *Repository) AggregateForProduct(ctx context.Context, productID int64) (float64, int64, error) {
	var agg struct {
		AvgRating float64
		Cnt       int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS cnt
		FROM reviews
		WHERE product_id = ?
	`, productID).Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.AvgRating, agg.Cnt, nil
}

// UpdateProductAggregates writes the denormalized rating columns.
func (r *Repository) UpdateProductAggregates(ctx context.Context, productID int64, avgRating float64, count int64) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE products
		SET average_rating = ?, review_count = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, avgRating, count, productID).Error
}

// ProductExists reports whether the product row is present.
func (r *Repository) ProductExists(ctx context.Context, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReviewExists reports whether the review row is present.
func (r *Repository) ReviewExists(ctx context.Context, reviewID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", reviewID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByProduct returns a product's reviews with their authors, most liked
// first, newest breaking ties.
func (r *Repository) ListByProduct(ctx context.Context, productID int64) ([]ReviewDTO, error) {
	var rows []ReviewDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT r.id, r.rating, r.comment, r.likes_count, r.created_at,
		       u.username, u.avatar_url
		FROM reviews r
		JOIN users u ON u.device_id = r.device_id
		WHERE r.product_id = ?
		ORDER BY r.likes_count DESC, r.created_at DESC
	`, productID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListTop returns the most-liked reviews across all products joined with
// author and product summary data.
func (r *Repository) ListTop(ctx context.Context, limit int) ([]TopReviewDTO, error) {
	var rows []TopReviewDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT r.id, r.rating, r.comment, r.likes_count, r.created_at,
		       u.username, u.avatar_url,
		       p.name AS product_name, p.description AS product_description, p.price,
		       (SELECT pi2.image_path
		        FROM product_images pi2
		        WHERE pi2.product_id = p.id
		        ORDER BY pi2.is_primary DESC, pi2.sort_order ASC, pi2.id ASC
		        LIMIT 1) AS product_image
		FROM reviews r
		JOIN users u ON r.device_id = u.device_id
		JOIN products p ON r.product_id = p.id
		ORDER BY r.likes_count DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// InsertLike records one like in the per-device ledger.
func (r *Repository) InsertLike(ctx context.Context, like *models.ReviewLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// IncrementLikes bumps the denormalized counter on the review.
func (r *Repository) IncrementLikes(ctx context.Context, reviewID int64) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE reviews SET likes_count = likes_count + 1 WHERE id = ?
	`, reviewID).Error
}
