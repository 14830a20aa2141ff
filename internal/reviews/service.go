package reviews

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nordmart/storefront-backend/pkg/db"
	"github.com/nordmart/storefront-backend/pkg/db/models"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
)

// TopReviewsLimit is how many reviews the home page surfaces.
const TopReviewsLimit = 6

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// userChecker reports whether a device has a user row.
type userChecker interface {
	ExistsByDeviceID(ctx context.Context, deviceID string) (bool, error)
}

// Service exposes review operations.
type Service interface {
	Create(ctx context.Context, productID int64, input CreateInput) error
	ListByProduct(ctx context.Context, productID int64) ([]ReviewDTO, error)
	Top(ctx context.Context) ([]TopReviewDTO, error)
	Like(ctx context.Context, reviewID int64, input LikeInput) error
}

type service struct {
	repo  *Repository
	tx    txRunner
	users userChecker
}

// NewService builds a review service with the required dependencies.
func NewService(repo *Repository, tx txRunner, users userChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if users == nil {
		return nil, fmt.Errorf("user checker required")
	}
	return &service{repo: repo, tx: tx, users: users}, nil
}

// Create inserts a review and recomputes the product's rating aggregates in
// the same transaction, so the stats are never stale relative to the rows.
func (s *service) Create(ctx context.Context, productID int64, input CreateInput) error {
	if err := s.requireRegistered(ctx, input.DeviceID); err != nil {
		return err
	}
	if input.Rating < 1 || input.Rating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be 1-5")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "comment required")
	}

	exists, err := s.repo.ProductExists(ctx, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check product")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		review := &models.Review{
			ProductID: productID,
			DeviceID:  strings.TrimSpace(input.DeviceID),
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := repo.InsertReview(ctx, review); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert review")
		}

		avg, count, err := repo.AggregateForProduct(ctx, productID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate reviews")
		}
		if err := repo.UpdateProductAggregates(ctx, productID, avg, count); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product aggregates")
		}
		return nil
	})
}

func (s *service) ListByProduct(ctx context.Context, productID int64) ([]ReviewDTO, error) {
	rows, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	if rows == nil {
		rows = []ReviewDTO{}
	}
	return rows, nil
}

func (s *service) Top(ctx context.Context) ([]TopReviewDTO, error) {
	rows, err := s.repo.ListTop(ctx, TopReviewsLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list top reviews")
	}
	if rows == nil {
		rows = []TopReviewDTO{}
	}
	return rows, nil
}

// Like records at most one like per (review, device). A repeated like is a
// no-op success; the counter only moves when the ledger row is new.
func (s *service) Like(ctx context.Context, reviewID int64, input LikeInput) error {
	if err := s.requireRegistered(ctx, input.DeviceID); err != nil {
		return err
	}

	exists, err := s.repo.ReviewExists(ctx, reviewID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check review")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		like := &models.ReviewLike{
			ReviewID: reviewID,
			DeviceID: strings.TrimSpace(input.DeviceID),
		}
		if err := repo.InsertLike(ctx, like); err != nil {
			if db.IsUniqueViolation(err, "") {
				return nil
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert like")
		}
		if err := repo.IncrementLikes(ctx, reviewID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "increment likes")
		}
		return nil
	})
}

func (s *service) requireRegistered(ctx context.Context, deviceID string) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "device_id required")
	}
	registered, err := s.users.ExistsByDeviceID(ctx, deviceID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check user")
	}
	if !registered {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "User not registered")
	}
	return nil
}
