package models

import "time"

// Review is authored by a registered device. LikesCount mirrors the
// review_likes ledger.
type Review struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID  int64     `gorm:"column:product_id;not null"`
	DeviceID   string    `gorm:"column:device_id;not null"`
	Rating     int       `gorm:"column:rating;not null"`
	Comment    string    `gorm:"column:comment;not null"`
	LikesCount int       `gorm:"column:likes_count;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
