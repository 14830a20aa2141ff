package controllers

import (
	"net/http"

	"github.com/nordmart/storefront-backend/api/responses"
	"github.com/nordmart/storefront-backend/api/validators"
	productsvc "github.com/nordmart/storefront-backend/internal/products"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
	"github.com/nordmart/storefront-backend/pkg/logger"
	"github.com/nordmart/storefront-backend/pkg/pagination"
)

const maxSearchLength = 200

// ListProducts serves the filtered, paginated, sorted browse page.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		params := productsvc.ListParams{
			Pagination: pagination.Params{
				Page:  validators.CoerceQueryInt(r, "page", 1),
				Limit: validators.ClampQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit),
			},
			Sort:   r.URL.Query().Get("sort"),
			Search: validators.SanitizeString(r.URL.Query().Get("search"), maxSearchLength),
		}
		if id, ok := validators.CoerceQueryInt64(r, "category_id"); ok {
			params.CategoryID = &id
		}
		if id, ok := validators.CoerceQueryInt64(r, "subcategory_id"); ok {
			params.SubcategoryID = &id
		}

		list, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ProductDetail serves one product with its full image list.
func ProductDetail(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		productID, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.Detail(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// RelatedProducts serves the same-primary-category carousel.
func RelatedProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		productID, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit := validators.CoerceQueryInt(r, "limit", productsvc.RelatedDefaultLimit)

		rows, err := svc.Related(r.Context(), productID, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
