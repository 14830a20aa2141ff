package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
)

// Service exposes the category read surface.
type Service interface {
	TopLevel(ctx context.Context) ([]CategorySummary, error)
	Tree(ctx context.Context) ([]CategoryNode, error)
	Subcategories(ctx context.Context, parentID int64) ([]CategoryChild, error)
	DescendantIDs(ctx context.Context, anchorID int64) ([]int64, error)
}

type service struct {
	repo *Repository
}

// NewService builds a category service backed by the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) TopLevel(ctx context.Context) ([]CategorySummary, error) {
	rows, err := s.repo.ListTopLevel(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	if rows == nil {
		rows = []CategorySummary{}
	}
	return rows, nil
}

func (s *service) Tree(ctx context.Context) ([]CategoryNode, error) {
	parents, err := s.repo.ListTopLevel(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list parent categories")
	}
	children, err := s.repo.ListAllChildren(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list child categories")
	}

	byParent := make(map[int64][]CategoryChild, len(parents))
	for _, child := range children {
		byParent[child.ParentID] = append(byParent[child.ParentID], child)
	}

	tree := make([]CategoryNode, 0, len(parents))
	for _, parent := range parents {
		subs := byParent[parent.ID]
		if subs == nil {
			subs = []CategoryChild{}
		}
		tree = append(tree, CategoryNode{
			ID:            parent.ID,
			Name:          parent.Name,
			Icon:          parent.Icon,
			Subcategories: subs,
		})
	}
	return tree, nil
}

func (s *service) Subcategories(ctx context.Context, parentID int64) ([]CategoryChild, error) {
	rows, err := s.repo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list subcategories")
	}
	if rows == nil {
		rows = []CategoryChild{}
	}
	return rows, nil
}

func (s *service) DescendantIDs(ctx context.Context, anchorID int64) ([]int64, error) {
	ids, err := s.repo.DescendantIDs(ctx, anchorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "expand category descendants")
	}
	return ids, nil
}
