package catalog

import (
	"context"

	"gorm.io/gorm"
)

// Repository exposes category persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListTopLevel returns parent categories ordered by name, flagging the ones
// that have children.
func (r *Repository) ListTopLevel(ctx context.Context) ([]CategorySummary, error) {
	var rows []CategorySummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id, c.name, c.icon,
		       EXISTS(SELECT 1 FROM categories sc WHERE sc.parent_id = c.id) AS has_children
		FROM categories c
		WHERE c.parent_id IS NULL
		ORDER BY c.name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListChildren returns the direct children of the given parent ordered by name.
func (r *Repository) ListChildren(ctx context.Context, parentID int64) ([]CategoryChild, error) {
	var rows []CategoryChild
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, icon, parent_id
		FROM categories
		WHERE parent_id = ?
		ORDER BY name ASC
	`, parentID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAllChildren returns every non-root category ordered by name.
func (r *Repository) ListAllChildren(ctx context.Context) ([]CategoryChild, error) {
	var rows []CategoryChild
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, icon, parent_id
		FROM categories
		WHERE parent_id IS NOT NULL
		ORDER BY name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DescendantIDs resolves a category into itself plus every category nested
// under it. The walk is fully recursive even though current data is only two
// levels deep.
func (r *Repository) DescendantIDs(ctx context.Context, anchorID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Raw(`
		WITH RECURSIVE descendants(id) AS (
			SELECT id FROM categories WHERE id = ?
			UNION ALL
			SELECT c.id FROM categories c JOIN descendants d ON c.parent_id = d.id
		)
		SELECT id FROM descendants
	`, anchorID).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
