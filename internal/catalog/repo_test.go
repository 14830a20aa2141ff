package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	categories := `
CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  icon TEXT,
  parent_id INTEGER REFERENCES categories(id)
);`
	require.NoError(t, db.Exec(categories).Error)
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string, parentID *int64) int64 {
	t.Helper()

	require.NoError(t, db.Exec(
		`INSERT INTO categories (name, icon, parent_id) VALUES (?, ?, ?)`,
		name, "icon-"+name, parentID,
	).Error)

	var id int64
	require.NoError(t, db.Raw(`SELECT id FROM categories WHERE name = ?`, name).Scan(&id).Error)
	return id
}

func TestRepositoryListTopLevel(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	electronics := seedCategory(t, db, "Electronics", nil)
	seedCategory(t, db, "Books", nil)
	seedCategory(t, db, "Phones", &electronics)

	rows, err := repo.ListTopLevel(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// name ASC
	assert.Equal(t, "Books", rows[0].Name)
	assert.False(t, rows[0].HasChildren)
	assert.Equal(t, "Electronics", rows[1].Name)
	assert.True(t, rows[1].HasChildren)
}

func TestRepositoryListChildren(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	electronics := seedCategory(t, db, "Electronics", nil)
	seedCategory(t, db, "Phones", &electronics)
	seedCategory(t, db, "Audio", &electronics)
	seedCategory(t, db, "Books", nil)

	rows, err := repo.ListChildren(context.Background(), electronics)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Audio", rows[0].Name)
	assert.Equal(t, "Phones", rows[1].Name)
	assert.Equal(t, electronics, rows[0].ParentID)
}

func TestRepositoryDescendantIDs(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	electronics := seedCategory(t, db, "Electronics", nil)
	phones := seedCategory(t, db, "Phones", &electronics)
	audio := seedCategory(t, db, "Audio", &electronics)
	// a third level, to exercise the recursive walk beyond current data
	accessories := seedCategory(t, db, "Phone Accessories", &phones)
	seedCategory(t, db, "Books", nil)

	ids, err := repo.DescendantIDs(context.Background(), electronics)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{electronics, phones, audio, accessories}, ids)

	leaf, err := repo.DescendantIDs(context.Background(), audio)
	require.NoError(t, err)
	assert.Equal(t, []int64{audio}, leaf)
}

func TestServiceTree(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo)
	require.NoError(t, err)

	electronics := seedCategory(t, db, "Electronics", nil)
	seedCategory(t, db, "Phones", &electronics)
	seedCategory(t, db, "Books", nil)

	tree, err := svc.Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, "Books", tree[0].Name)
	assert.Empty(t, tree[0].Subcategories)
	assert.NotNil(t, tree[0].Subcategories)

	assert.Equal(t, "Electronics", tree[1].Name)
	require.Len(t, tree[1].Subcategories, 1)
	assert.Equal(t, "Phones", tree[1].Subcategories[0].Name)
}
