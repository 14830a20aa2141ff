package marketing

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/nordmart/storefront-backend/pkg/db/models"
)

// Repository exposes promotion and hero slot reads.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a marketing repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActivePromotions returns active promotions inside their time window,
// highest priority first.
func (r *Repository) ListActivePromotions(ctx context.Context, now time.Time) ([]models.Promotion, error) {
	var rows []models.Promotion
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_at IS NULL OR start_at <= ?", now).
		Where("end_at IS NULL OR end_at >= ?", now).
		Order("priority DESC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type heroRow struct {
	ID           int64
	DetailText   sql.NullString
	DisplayOrder int
	IsActive     bool
	ProductID    int64
	Name         string
	Description  sql.NullString
	Price        float64
	Badge        sql.NullString
	CategoryName sql.NullString
	Image        sql.NullString
}

// ListActiveHeroes returns active hero slots joined with their product, the
// product's primary category name and its cover image, ordered for display.
func (r *Repository) ListActiveHeroes(ctx context.Context) ([]heroRow, error) {
	var rows []heroRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT hp.id, hp.detail_text, hp.display_order, hp.is_active,
		       p.id AS product_id, p.name, p.description, p.price, p.badge,
		       c.name AS category_name,
		       (SELECT pi2.image_path
		        FROM product_images pi2
		        WHERE pi2.product_id = p.id
		        ORDER BY pi2.is_primary DESC, pi2.sort_order ASC, pi2.id ASC
		        LIMIT 1) AS image
		FROM hero_products hp
		JOIN products p ON hp.product_id = p.id
		LEFT JOIN product_categories pc ON pc.product_id = p.id AND pc.is_primary = ?
		LEFT JOIN categories c ON c.id = pc.category_id
		WHERE hp.is_active = ?
		ORDER BY hp.display_order ASC
	`, true, true).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
