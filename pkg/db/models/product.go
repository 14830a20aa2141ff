package models

import "time"

// Product carries denormalized review aggregates that are recomputed on every
// review insert.
type Product struct {
	ID            int64             `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string            `gorm:"column:name;not null"`
	Description   *string           `gorm:"column:description"`
	Price         float64           `gorm:"column:price;not null"`
	AverageRating float64           `gorm:"column:average_rating;not null;default:0"`
	ReviewCount   int               `gorm:"column:review_count;not null;default:0"`
	Badge         *string           `gorm:"column:badge"`
	Categories    []ProductCategory `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images        []ProductImage    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
