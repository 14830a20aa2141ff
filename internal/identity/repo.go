package identity

import (
	"context"

	"gorm.io/gorm"

	"github.com/nordmart/storefront-backend/pkg/db/models"
)

// Repository exposes user persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an identity repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByDeviceID retrieves the user keyed by the device identifier.
func (r *Repository) FindByDeviceID(ctx context.Context, deviceID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user row.
func (r *Repository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// ConfirmByToken marks the matching user confirmed and reports how many rows
// were updated.
func (r *Repository) ConfirmByToken(ctx context.Context, token string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("confirmation_token = ?", token).
		UpdateColumn("is_confirmed", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// ExistsByDeviceID reports whether a user row exists for the device.
func (r *Repository) ExistsByDeviceID(ctx context.Context, deviceID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("device_id = ?", deviceID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
