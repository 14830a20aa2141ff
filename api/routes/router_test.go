package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalogsvc "github.com/nordmart/storefront-backend/internal/catalog"
	marketingsvc "github.com/nordmart/storefront-backend/internal/marketing"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubCatalogService struct{}

func (stubCatalogService) TopLevel(context.Context) ([]catalogsvc.CategorySummary, error) {
	return []catalogsvc.CategorySummary{{ID: 1, Name: "Lighting"}}, nil
}

func (stubCatalogService) Tree(context.Context) ([]catalogsvc.CategoryNode, error) {
	return []catalogsvc.CategoryNode{}, nil
}

func (stubCatalogService) Subcategories(context.Context, int64) ([]catalogsvc.CategoryChild, error) {
	return []catalogsvc.CategoryChild{}, nil
}

func (stubCatalogService) DescendantIDs(context.Context, int64) ([]int64, error) {
	return nil, nil
}

type stubMarketingService struct{}

func (stubMarketingService) ActivePromotions(context.Context) ([]marketingsvc.PromotionDTO, error) {
	return []marketingsvc.PromotionDTO{}, nil
}

func (stubMarketingService) ActiveHeroes(context.Context) ([]marketingsvc.HeroProductDTO, error) {
	return []marketingsvc.HeroProductDTO{}, nil
}

func newTestRouter() http.Handler {
	return NewRouter(Deps{
		DB:        stubPinger{},
		Catalog:   stubCatalogService{},
		Marketing: stubMarketingService{},
	})
}

func TestRouterDispatchesCategories(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Lighting") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouterMountsWriteEndpoints(t *testing.T) {
	router := newTestRouter()

	// services not wired: the route must exist and answer 500, not 404
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/users/identify"},
		{http.MethodPost, "/api/products/1/reviews"},
		{http.MethodPost, "/api/reviews/1/like"},
		{http.MethodPost, "/api/orders"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code == http.StatusNotFound {
			t.Fatalf("%s %s not mounted", tc.method, tc.path)
		}
	}
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
