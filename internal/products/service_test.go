package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordmart/storefront-backend/pkg/pagination"
)

func newTestService(t *testing.T, expander categoryExpander) (Service, *Repository) {
	t.Helper()

	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	if expander == nil {
		expander = stubExpander{}
	}
	svc, err := NewService(repo, expander)
	require.NoError(t, err)
	return svc, repo
}

func TestServiceList_PaginationBounds(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, stubExpander{})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		seedTestProduct(t, db, testProduct{name: string(rune('A'+i)) + " Widget", price: float64(i + 1)})
	}

	list, err := svc.List(context.Background(), ListParams{Pagination: pagination.Params{Page: 1, Limit: 3}})
	require.NoError(t, err)
	assert.Len(t, list.Items, 3)
	assert.Equal(t, int64(7), list.TotalItems)
	assert.Equal(t, 3, list.TotalPages)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 3, list.Limit)

	// a page past the end returns empty items with correct totals
	beyond, err := svc.List(context.Background(), ListParams{Pagination: pagination.Params{Page: 9, Limit: 3}})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, int64(7), beyond.TotalItems)
	assert.Equal(t, 3, beyond.TotalPages)
	assert.Equal(t, 9, beyond.Page)
}

func TestServiceList_EmptyCatalogHasOnePage(t *testing.T) {
	svc, _ := newTestService(t, nil)

	list, err := svc.List(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Equal(t, int64(0), list.TotalItems)
	assert.Equal(t, 1, list.TotalPages)
}

func TestServiceList_CategoryFilterIncludesDescendants(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	electronics := seedTestCategory(t, db, "Electronics", nil)
	phones := seedTestCategory(t, db, "Phones", &electronics)
	books := seedTestCategory(t, db, "Books", nil)

	direct := seedTestProduct(t, db, testProduct{name: "TV", price: 300})
	nested := seedTestProduct(t, db, testProduct{name: "Handset", price: 200})
	other := seedTestProduct(t, db, testProduct{name: "Novel", price: 10})
	linkTestCategory(t, db, direct, electronics, true)
	linkTestCategory(t, db, nested, phones, true)
	linkTestCategory(t, db, other, books, true)

	expander := stubExpander{sets: map[int64][]int64{
		electronics: {electronics, phones},
		phones:      {phones},
	}}
	svc, err := NewService(repo, expander)
	require.NoError(t, err)

	// parent filter = union of parent-tagged and child-tagged products
	list, err := svc.List(context.Background(), ListParams{CategoryID: &electronics})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	names := []string{list.Items[0].Name, list.Items[1].Name}
	assert.ElementsMatch(t, []string{"TV", "Handset"}, names)

	// leaf filter = only directly tagged products
	leaf, err := svc.List(context.Background(), ListParams{CategoryID: &phones})
	require.NoError(t, err)
	require.Len(t, leaf.Items, 1)
	assert.Equal(t, "Handset", leaf.Items[0].Name)
}

func TestServiceList_SubcategoryTakesPrecedence(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	electronics := seedTestCategory(t, db, "Electronics", nil)
	phones := seedTestCategory(t, db, "Phones", &electronics)

	tv := seedTestProduct(t, db, testProduct{name: "TV", price: 300})
	handset := seedTestProduct(t, db, testProduct{name: "Handset", price: 200})
	linkTestCategory(t, db, tv, electronics, true)
	linkTestCategory(t, db, handset, phones, true)

	expander := stubExpander{sets: map[int64][]int64{
		electronics: {electronics, phones},
		phones:      {phones},
	}}
	svc, err := NewService(repo, expander)
	require.NoError(t, err)

	list, err := svc.List(context.Background(), ListParams{CategoryID: &electronics, SubcategoryID: &phones})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Handset", list.Items[0].Name)
}

func TestServiceList_AnyLinkMatchesNotJustPrimary(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	books := seedTestCategory(t, db, "Books", nil)
	gifts := seedTestCategory(t, db, "Gifts", nil)

	novel := seedTestProduct(t, db, testProduct{name: "Novel", price: 10})
	linkTestCategory(t, db, novel, books, true)
	linkTestCategory(t, db, novel, gifts, false)

	expander := stubExpander{sets: map[int64][]int64{gifts: {gifts}}}
	svc, err := NewService(repo, expander)
	require.NoError(t, err)

	list, err := svc.List(context.Background(), ListParams{CategoryID: &gifts})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Novel", list.Items[0].Name)
}

func TestServiceList_SearchMatchesNameOrDescription(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, stubExpander{})
	require.NoError(t, err)

	seedTestProduct(t, db, testProduct{name: "Wireless Mouse", description: "ergonomic", price: 25})
	seedTestProduct(t, db, testProduct{name: "Keyboard", description: "wireless mechanical", price: 70})
	seedTestProduct(t, db, testProduct{name: "Monitor", description: "27 inch", price: 250})

	list, err := svc.List(context.Background(), ListParams{Search: "WIRELESS"})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, int64(2), list.TotalItems)
}

func TestServiceList_SortOrders(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, stubExpander{})
	require.NoError(t, err)

	seedTestProduct(t, db, testProduct{name: "Cheap", price: 5, rating: 3, reviews: 1})
	seedTestProduct(t, db, testProduct{name: "Mid", price: 50, rating: 4.5, reviews: 10})
	seedTestProduct(t, db, testProduct{name: "Pricey", price: 500, rating: 4.5, reviews: 10})

	byPriceAsc, err := svc.List(context.Background(), ListParams{Sort: SortPriceAsc})
	require.NoError(t, err)
	require.Len(t, byPriceAsc.Items, 3)
	assert.Equal(t, "Cheap", byPriceAsc.Items[0].Name)
	assert.Equal(t, "Pricey", byPriceAsc.Items[2].Name)

	byPriceDesc, err := svc.List(context.Background(), ListParams{Sort: SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, "Pricey", byPriceDesc.Items[0].Name)

	// popular ties on review_count/average_rating break deterministically by id
	popular, err := svc.List(context.Background(), ListParams{Sort: "bogus"})
	require.NoError(t, err)
	require.Len(t, popular.Items, 3)
	assert.Equal(t, "Mid", popular.Items[0].Name)
	assert.Equal(t, "Pricey", popular.Items[1].Name)
	assert.Equal(t, "Cheap", popular.Items[2].Name)
}

func TestServiceList_CoverImageSelection(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, stubExpander{})
	require.NoError(t, err)

	id := seedTestProduct(t, db, testProduct{name: "Camera", price: 400})
	seedTestImage(t, db, id, "/img/camera-side.jpg", false, 1)
	seedTestImage(t, db, id, "/img/camera-front.jpg", true, 5)
	seedTestImage(t, db, id, "/img/camera-top.jpg", false, 0)

	list, err := svc.List(context.Background(), ListParams{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	item := list.Items[0]
	require.NotNil(t, item.Image)
	assert.Equal(t, "/img/camera-front.jpg", *item.Image)
	assert.Equal(t, []string{"/img/camera-front.jpg", "/img/camera-top.jpg", "/img/camera-side.jpg"}, item.Images)
}

func TestServiceDetail(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, stubExpander{})
	require.NoError(t, err)

	books := seedTestCategory(t, db, "Books", nil)
	id := seedTestProduct(t, db, testProduct{name: "Novel", description: "a story", price: 12, rating: 4.2, reviews: 5})
	linkTestCategory(t, db, id, books, true)
	seedTestImage(t, db, id, "/img/novel.jpg", true, 0)

	detail, err := svc.Detail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Novel", detail.Name)
	require.NotNil(t, detail.PrimaryCategoryID)
	assert.Equal(t, books, *detail.PrimaryCategoryID)
	require.NotNil(t, detail.PrimaryCategoryName)
	assert.Equal(t, "Books", *detail.PrimaryCategoryName)
	assert.Equal(t, []string{"/img/novel.jpg"}, detail.Images)
}

func TestServiceDetail_NotFound(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Detail(context.Background(), 9999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestServiceRelated(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, stubExpander{})
	require.NoError(t, err)

	books := seedTestCategory(t, db, "Books", nil)

	anchor := seedTestProduct(t, db, testProduct{name: "Novel", price: 12, reviews: 3})
	sibling := seedTestProduct(t, db, testProduct{name: "Cookbook", price: 20, reviews: 8})
	another := seedTestProduct(t, db, testProduct{name: "Atlas", price: 30, reviews: 1})
	orphan := seedTestProduct(t, db, testProduct{name: "Loose Leaf", price: 2})

	linkTestCategory(t, db, anchor, books, true)
	linkTestCategory(t, db, sibling, books, true)
	linkTestCategory(t, db, another, books, true)
	_ = orphan

	related, err := svc.Related(context.Background(), anchor, 0)
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, "Cookbook", related[0].Name)
	for _, item := range related {
		assert.NotEqual(t, anchor, item.ID)
	}

	// no primary category means an empty list, not an error
	empty, err := svc.Related(context.Background(), orphan, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// limit is clamped
	capped, err := svc.Related(context.Background(), anchor, 1)
	require.NoError(t, err)
	assert.Len(t, capped, 1)
}

func TestClampRelatedLimit(t *testing.T) {
	assert.Equal(t, RelatedDefaultLimit, clampRelatedLimit(0))
	assert.Equal(t, RelatedDefaultLimit, clampRelatedLimit(-5))
	assert.Equal(t, RelatedMaxLimit, clampRelatedLimit(100))
	assert.Equal(t, 10, clampRelatedLimit(10))
}
