package marketing

import "time"

// PromotionDTO mirrors a promotions row for the banner carousel.
type PromotionDTO struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Subtitle      *string    `json:"subtitle"`
	Description   *string    `json:"description"`
	ImagePath     *string    `json:"image_path"`
	PromoType     string     `json:"promo_type"`
	DiscountValue float64    `json:"discount_value"`
	CouponCode    *string    `json:"coupon_code"`
	StartAt       *time.Time `json:"start_at"`
	EndAt         *time.Time `json:"end_at"`
	Priority      int        `json:"priority"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

// HeroProductDTO is a hero slot with its product nested, the shape the home
// page carousel consumes.
type HeroProductDTO struct {
	ID           int64           `json:"id"`
	DetailText   *string         `json:"detail_text"`
	DisplayOrder int             `json:"display_order"`
	IsActive     bool            `json:"is_active"`
	Product      HeroProductItem `json:"product"`
}

// HeroProductItem is the product summary embedded in a hero slot.
type HeroProductItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Badge       *string `json:"badge"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
}
