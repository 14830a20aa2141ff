package models

import "time"

// ProductImage is one entry in a product's ordered image list. Display order
// is is_primary DESC, sort_order ASC, id ASC; at most one row per product is
// primary.
type ProductImage struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID int64     `gorm:"column:product_id;not null"`
	ImagePath string    `gorm:"column:image_path;not null"`
	IsPrimary bool      `gorm:"column:is_primary;not null;default:false"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
