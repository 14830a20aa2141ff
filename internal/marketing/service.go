package marketing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nordmart/storefront-backend/pkg/db/models"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
)

// Service exposes the marketing surfaces for the home page.
type Service interface {
	ActivePromotions(ctx context.Context) ([]PromotionDTO, error)
	ActiveHeroes(ctx context.Context) ([]HeroProductDTO, error)
}

type service struct {
	repo *Repository
	now  func() time.Time
}

// NewService builds a marketing service around the repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("marketing repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) ActivePromotions(ctx context.Context) ([]PromotionDTO, error) {
	rows, err := s.repo.ListActivePromotions(ctx, s.now().UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list promotions")
	}

	out := make([]PromotionDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPromotionDTO(row))
	}
	return out, nil
}

func (s *service) ActiveHeroes(ctx context.Context) ([]HeroProductDTO, error) {
	rows, err := s.repo.ListActiveHeroes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list hero products")
	}

	out := make([]HeroProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, HeroProductDTO{
			ID:           row.ID,
			DetailText:   nullStringPtr(row.DetailText),
			DisplayOrder: row.DisplayOrder,
			IsActive:     row.IsActive,
			Product: HeroProductItem{
				ID:          row.ProductID,
				Name:        row.Name,
				Description: nullStringPtr(row.Description),
				Price:       row.Price,
				Badge:       nullStringPtr(row.Badge),
				Category:    nullStringPtr(row.CategoryName),
				Image:       nullStringPtr(row.Image),
			},
		})
	}
	return out, nil
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func toPromotionDTO(row models.Promotion) PromotionDTO {
	return PromotionDTO{
		ID:            row.ID,
		Title:         row.Title,
		Subtitle:      row.Subtitle,
		Description:   row.Description,
		ImagePath:     row.ImagePath,
		PromoType:     row.PromoType,
		DiscountValue: row.DiscountValue,
		CouponCode:    row.CouponCode,
		StartAt:       row.StartAt,
		EndAt:         row.EndAt,
		Priority:      row.Priority,
		IsActive:      row.IsActive,
		CreatedAt:     row.CreatedAt,
	}
}
