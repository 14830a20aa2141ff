package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nordmart/storefront-backend/pkg/db"
	"github.com/nordmart/storefront-backend/pkg/db/models"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
	"github.com/nordmart/storefront-backend/pkg/logger"
)

// Service exposes device-identity operations.
type Service interface {
	Identify(ctx context.Context, input IdentifyInput) (*IdentifyResult, error)
	Confirm(ctx context.Context, token string) error
}

type service struct {
	repo     *Repository
	notifier Notifier
	logg     *logger.Logger
}

// NewService builds an identity service with the required dependencies.
func NewService(repo *Repository, notifier Notifier, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("identity repository required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	return &service{repo: repo, notifier: notifier, logg: logg}, nil
}

// Identify maps a device id to its user row. An existing row is returned
// unchanged; a complete profile on a fresh device registers it; anything else
// gets the bare placeholder.
func (s *service) Identify(ctx context.Context, input IdentifyInput) (*IdentifyResult, error) {
	deviceID := strings.TrimSpace(input.DeviceID)
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Device ID required")
	}

	existing, err := s.repo.FindByDeviceID(ctx, deviceID)
	if err == nil {
		return &IdentifyResult{User: FromModel(existing), DeviceID: deviceID}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	if !input.HasFullProfile() {
		return &IdentifyResult{DeviceID: deviceID}, nil
	}

	token := uuid.NewString()
	user := &models.User{
		DeviceID:          deviceID,
		Username:          strings.TrimSpace(input.Username),
		Email:             strings.TrimSpace(input.Email),
		PhoneNumber:       strings.TrimSpace(input.PhoneNumber),
		AvatarURL:         input.AvatarURL,
		Location:          input.Location,
		ConfirmationToken: &token,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// two concurrent registrations for the same device: the first insert
		// wins and the second returns the row it lost to
		if db.IsUniqueViolation(err, "") {
			winner, findErr := s.repo.FindByDeviceID(ctx, deviceID)
			if findErr != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, findErr, "reload user after conflict")
			}
			return &IdentifyResult{User: FromModel(winner), DeviceID: deviceID}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	if err := s.notifier.SendConfirmation(ctx, user.Email, token); err != nil && s.logg != nil {
		// registration already committed; a lost email is log-only
		errCtx := s.logg.WithFields(ctx, map[string]any{"email": user.Email})
		s.logg.Warn(errCtx, "identity.confirmation_send_failed")
	}

	created, err := s.repo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload created user")
	}
	return &IdentifyResult{User: FromModel(created), DeviceID: deviceID, Created: true}, nil
}

// Confirm marks the user holding the token as confirmed. An unknown token is
// a 404 rather than a silent no-op.
func (s *service) Confirm(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "confirmation token required")
	}

	affected, err := s.repo.ConfirmByToken(ctx, token)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "confirm user")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "confirmation token not found")
	}
	return nil
}
