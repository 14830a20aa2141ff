package controllers

import (
	"net/http"

	"github.com/nordmart/storefront-backend/api/responses"
	"github.com/nordmart/storefront-backend/api/validators"
	ordersvc "github.com/nordmart/storefront-backend/internal/orders"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
	"github.com/nordmart/storefront-backend/pkg/logger"
)

// CreateOrder places an order for a registered device, pricing the items from
// the current product rows.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload ordersvc.CheckoutInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Checkout(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
