package models

import "time"

// ReviewLike records one like per device per review. The unique index is what
// makes repeat likes no-ops.
type ReviewLike struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ReviewID  int64     `gorm:"column:review_id;not null;uniqueIndex:idx_review_likes_review_device"`
	DeviceID  string    `gorm:"column:device_id;not null;uniqueIndex:idx_review_likes_review_device"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
