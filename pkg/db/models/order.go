package models

import "time"

// Order is a minimal purchase ledger entry.
type Order struct {
	ID          int64       `gorm:"column:id;primaryKey;autoIncrement"`
	DeviceID    string      `gorm:"column:device_id;not null"`
	TotalAmount float64     `gorm:"column:total_amount;not null"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime"`
}
