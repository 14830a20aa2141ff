package reviews

import "time"

// CreateInput is the request body for posting a review.
type CreateInput struct {
	DeviceID string `json:"device_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// LikeInput is the request body for liking a review.
type LikeInput struct {
	DeviceID string `json:"device_id"`
}

// ReviewDTO is a review row joined with its author.
type ReviewDTO struct {
	ID         int64     `json:"id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	LikesCount int       `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	Username   string    `json:"username"`
	AvatarURL  *string   `json:"avatar_url"`
}

// TopReviewDTO is a review joined with author and product for the home page.
type TopReviewDTO struct {
	ID                 int64     `json:"id"`
	Rating             int       `json:"rating"`
	Comment            string    `json:"comment"`
	LikesCount         int       `json:"likes_count"`
	CreatedAt          time.Time `json:"created_at"`
	Username           string    `json:"username"`
	AvatarURL          *string   `json:"avatar_url"`
	ProductName        string    `json:"product_name"`
	ProductDescription *string   `json:"product_description"`
	Price              float64   `json:"price"`
	ProductImage       *string   `json:"product_image"`
}
