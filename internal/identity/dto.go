package identity

import (
	"strings"
	"time"

	"github.com/nordmart/storefront-backend/pkg/db/models"
)

// IdentifyInput is the request body for the identify endpoint. Everything but
// the device id is optional; a row is only created when the profile is complete.
type IdentifyInput struct {
	DeviceID    string  `json:"device_id"`
	Username    string  `json:"username"`
	Email       string  `json:"email" validate:"omitempty,email"`
	PhoneNumber string  `json:"phone_number"`
	AvatarURL   *string `json:"avatar_url"`
	Location    *string `json:"location"`
}

// HasFullProfile reports whether the input carries enough data to register.
func (i IdentifyInput) HasFullProfile() bool {
	return strings.TrimSpace(i.Username) != "" &&
		strings.TrimSpace(i.Email) != "" &&
		strings.TrimSpace(i.PhoneNumber) != ""
}

// UserDTO is the transport shape for a user row. The confirmation token is
// deliberately absent; it only travels through the notifier.
type UserDTO struct {
	DeviceID    string    `json:"device_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	AvatarURL   *string   `json:"avatar_url"`
	Location    *string   `json:"location"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// IdentifyResult distinguishes a full user row from the bare placeholder the
// endpoint returns for unregistered devices.
type IdentifyResult struct {
	User     *UserDTO
	DeviceID string
	Created  bool
}

// Placeholder reports whether the device has no user row yet.
func (r IdentifyResult) Placeholder() bool {
	return r.User == nil
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		DeviceID:    u.DeviceID,
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		AvatarURL:   u.AvatarURL,
		Location:    u.Location,
		IsConfirmed: u.IsConfirmed,
		CreatedAt:   u.CreatedAt,
	}
}
