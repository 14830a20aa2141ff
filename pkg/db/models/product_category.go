package models

// ProductCategory links a product to a category. Exactly one link per product
// carries IsPrimary, used for canonical display and related-product lookups.
type ProductCategory struct {
	ProductID  int64 `gorm:"column:product_id;primaryKey"`
	CategoryID int64 `gorm:"column:category_id;primaryKey"`
	IsPrimary  bool  `gorm:"column:is_primary;not null;default:false"`
}
