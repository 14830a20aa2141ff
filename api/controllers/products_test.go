package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	productsvc "github.com/nordmart/storefront-backend/internal/products"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
)

type stubProductService struct {
	list       *productsvc.ProductList
	detail     *productsvc.ProductDetail
	related    []productsvc.RelatedProduct
	err        error
	gotParams  productsvc.ListParams
	gotLimit   int
	gotProduct int64
}

func (s *stubProductService) List(_ context.Context, params productsvc.ListParams) (*productsvc.ProductList, error) {
	s.gotParams = params
	return s.list, s.err
}

func (s *stubProductService) Detail(_ context.Context, productID int64) (*productsvc.ProductDetail, error) {
	s.gotProduct = productID
	return s.detail, s.err
}

func (s *stubProductService) Related(_ context.Context, productID int64, limit int) ([]productsvc.RelatedProduct, error) {
	s.gotProduct = productID
	s.gotLimit = limit
	return s.related, s.err
}

func TestListProductsParsesQuery(t *testing.T) {
	stub := &stubProductService{list: &productsvc.ProductList{Items: []productsvc.ProductSummary{}, Page: 2, Limit: 12}}
	handler := ListProducts(stub, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/products?page=2&limit=12&sort=price_asc&search=lamp&category_id=3&subcategory_id=7", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if stub.gotParams.Pagination.Page != 2 || stub.gotParams.Pagination.Limit != 12 {
		t.Fatalf("unexpected pagination: %+v", stub.gotParams.Pagination)
	}
	if stub.gotParams.Sort != "price_asc" || stub.gotParams.Search != "lamp" {
		t.Fatalf("unexpected sort/search: %+v", stub.gotParams)
	}
	if stub.gotParams.CategoryID == nil || *stub.gotParams.CategoryID != 3 {
		t.Fatalf("expected category_id 3, got %+v", stub.gotParams.CategoryID)
	}
	if stub.gotParams.SubcategoryID == nil || *stub.gotParams.SubcategoryID != 7 {
		t.Fatalf("expected subcategory_id 7, got %+v", stub.gotParams.SubcategoryID)
	}
}

func TestListProductsCoercesBadInput(t *testing.T) {
	stub := &stubProductService{list: &productsvc.ProductList{Items: []productsvc.ProductSummary{}}}
	handler := ListProducts(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=abc&limit=9999&category_id=xyz", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if stub.gotParams.Pagination.Page != 1 {
		t.Fatalf("malformed page should default to 1, got %d", stub.gotParams.Pagination.Page)
	}
	if stub.gotParams.Pagination.Limit != 100 {
		t.Fatalf("oversized limit should clamp to 100, got %d", stub.gotParams.Pagination.Limit)
	}
	if stub.gotParams.CategoryID != nil {
		t.Fatalf("malformed category_id should be dropped, got %v", *stub.gotParams.CategoryID)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	stub := &stubProductService{err: pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")}
	handler := ProductDetail(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/42", nil)
	req = withURLParam(req, "id", "42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}

	var payload map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "Product not found" {
		t.Fatalf("unexpected error body: %v", payload)
	}
}

func TestProductDetailInvalidID(t *testing.T) {
	stub := &stubProductService{}
	handler := ProductDetail(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestRelatedProductsPassesLimit(t *testing.T) {
	stub := &stubProductService{related: []productsvc.RelatedProduct{}}
	handler := RelatedProducts(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/5/related?limit=4", nil)
	req = withURLParam(req, "id", "5")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if stub.gotProduct != 5 || stub.gotLimit != 4 {
		t.Fatalf("expected product 5 limit 4, got %d/%d", stub.gotProduct, stub.gotLimit)
	}
}
