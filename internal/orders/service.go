package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nordmart/storefront-backend/pkg/db/models"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// userChecker reports whether a device has a user row.
type userChecker interface {
	ExistsByDeviceID(ctx context.Context, deviceID string) (bool, error)
}

// Service exposes checkout.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*OrderDTO, error)
}

type service struct {
	repo  *Repository
	tx    txRunner
	users userChecker
}

// NewService builds an orders service with the required dependencies.
func NewService(repo *Repository, tx txRunner, users userChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if users == nil {
		return nil, fmt.Errorf("user checker required")
	}
	return &service{repo: repo, tx: tx, users: users}, nil
}

// Checkout prices every requested line from the current product rows and
// writes the order header plus its items in one transaction. Unit prices are
// snapshotted on the items so later price changes don't rewrite history.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*OrderDTO, error) {
	deviceID := strings.TrimSpace(input.DeviceID)
	if deviceID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "device_id required")
	}
	registered, err := s.users.ExistsByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check user")
	}
	if !registered {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "User not registered")
	}

	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
		}
	}

	productIDs := make([]int64, 0, len(input.Items))
	for _, item := range input.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	prices, err := s.repo.PricesByProductID(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve prices")
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		price, ok := prices[item.ProductID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		unit := decimal.NewFromFloat(price)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	order := &models.Order{
		DeviceID:    deviceID,
		TotalAmount: total.Round(2).InexactFloat64(),
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.InsertOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert order")
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := repo.InsertItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert order items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderDTO(order, items), nil
}

func toOrderDTO(order *models.Order, items []models.OrderItem) *OrderDTO {
	out := &OrderDTO{
		ID:          order.ID,
		DeviceID:    order.DeviceID,
		TotalAmount: order.TotalAmount,
		Items:       make([]OrderItemDTO, 0, len(items)),
		CreatedAt:   order.CreatedAt,
	}
	for _, item := range items {
		out.Items = append(out.Items, OrderItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return out
}
