package models

import "time"

// User is keyed by a client-generated device identifier, not a credential.
// A row exists only once the device has registered a profile.
type User struct {
	DeviceID          string    `gorm:"column:device_id;primaryKey"`
	Username          string    `gorm:"column:username;not null"`
	Email             string    `gorm:"column:email;not null"`
	PhoneNumber       string    `gorm:"column:phone_number;not null"`
	AvatarURL         *string   `gorm:"column:avatar_url"`
	Location          *string   `gorm:"column:location"`
	IsConfirmed       bool      `gorm:"column:is_confirmed;not null;default:false"`
	ConfirmationToken *string   `gorm:"column:confirmation_token"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}
