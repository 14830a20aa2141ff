package controllers

import (
	"net/http"

	"github.com/nordmart/storefront-backend/api/responses"
	marketingsvc "github.com/nordmart/storefront-backend/internal/marketing"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
	"github.com/nordmart/storefront-backend/pkg/logger"
)

// Promotions returns active promotions inside their time window.
func Promotions(svc marketingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "marketing service unavailable"))
			return
		}

		rows, err := svc.ActivePromotions(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// HeroProducts returns the active hero slots for the home page.
func HeroProducts(svc marketingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "marketing service unavailable"))
			return
		}

		rows, err := svc.ActiveHeroes(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
