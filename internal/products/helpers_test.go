package products

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
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
	products := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT,
  price REAL NOT NULL,
  average_rating REAL NOT NULL DEFAULT 0,
  review_count INTEGER NOT NULL DEFAULT 0,
  badge TEXT,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`
	productCategories := `
CREATE TABLE IF NOT EXISTS product_categories (
  product_id INTEGER NOT NULL,
  category_id INTEGER NOT NULL,
  is_primary INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (product_id, category_id)
);`
	productImages := `
CREATE TABLE IF NOT EXISTS product_images (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL,
  image_path TEXT NOT NULL,
  is_primary INTEGER NOT NULL DEFAULT 0,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`
	require.NoError(t, db.Exec(categories).Error)
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(productCategories).Error)
	require.NoError(t, db.Exec(productImages).Error)
	return db
}

func seedTestCategory(t *testing.T, db *gorm.DB, name string, parentID *int64) int64 {
	t.Helper()

	require.NoError(t, db.Exec(
		`INSERT INTO categories (name, parent_id) VALUES (?, ?)`, name, parentID,
	).Error)
	var id int64
	require.NoError(t, db.Raw(`SELECT id FROM categories WHERE name = ?`, name).Scan(&id).Error)
	return id
}

type testProduct struct {
	name        string
	description string
	price       float64
	rating      float64
	reviews     int
}

func seedTestProduct(t *testing.T, db *gorm.DB, p testProduct) int64 {
	t.Helper()

	require.NoError(t, db.Exec(
		`INSERT INTO products (name, description, price, average_rating, review_count) VALUES (?, ?, ?, ?, ?)`,
		p.name, p.description, p.price, p.rating, p.reviews,
	).Error)
	var id int64
	require.NoError(t, db.Raw(`SELECT id FROM products WHERE name = ?`, p.name).Scan(&id).Error)
	return id
}

func linkTestCategory(t *testing.T, db *gorm.DB, productID, categoryID int64, primary bool) {
	t.Helper()

	require.NoError(t, db.Exec(
		`INSERT INTO product_categories (product_id, category_id, is_primary) VALUES (?, ?, ?)`,
		productID, categoryID, primary,
	).Error)
}

func seedTestImage(t *testing.T, db *gorm.DB, productID int64, path string, primary bool, sortOrder int) {
	t.Helper()

	require.NoError(t, db.Exec(
		`INSERT INTO product_images (product_id, image_path, is_primary, sort_order) VALUES (?, ?, ?, ?)`,
		productID, path, primary, sortOrder,
	).Error)
}

// stubExpander serves descendant sets from a fixed map, standing in for the
// catalog service.
type stubExpander struct {
	sets map[int64][]int64
}

func (s stubExpander) DescendantIDs(_ context.Context, anchorID int64) ([]int64, error) {
	return s.sets[anchorID], nil
}
