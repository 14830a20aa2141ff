package models

import "time"

// Promotion is an informational banner/deal with an optional time window.
// Product/category targeting tables exist in the schema but no pricing logic
// consults them.
type Promotion struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Title         string     `gorm:"column:title;not null"`
	Subtitle      *string    `gorm:"column:subtitle"`
	Description   *string    `gorm:"column:description"`
	ImagePath     *string    `gorm:"column:image_path"`
	PromoType     string     `gorm:"column:promo_type;not null"`
	DiscountValue float64    `gorm:"column:discount_value;not null;default:0"`
	CouponCode    *string    `gorm:"column:coupon_code"`
	StartAt       *time.Time `gorm:"column:start_at"`
	EndAt         *time.Time `gorm:"column:end_at"`
	Priority      int        `gorm:"column:priority;not null;default:0"`
	IsActive      bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
}
