package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordmart/storefront-backend/api/responses"
	"github.com/nordmart/storefront-backend/api/validators"
	identitysvc "github.com/nordmart/storefront-backend/internal/identity"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
	"github.com/nordmart/storefront-backend/pkg/logger"
)

// IdentifyUser maps a device id to its user row, registering the device when
// a complete profile is supplied.
func IdentifyUser(svc identitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "identity service unavailable"))
			return
		}

		var payload identitysvc.IdentifyInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Identify(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if result.Placeholder() {
			responses.WriteSuccess(w, map[string]string{"device_id": result.DeviceID})
			return
		}
		if result.Created {
			responses.WriteSuccessStatus(w, http.StatusCreated, result.User)
			return
		}
		responses.WriteSuccess(w, result.User)
	}
}

// ConfirmUser completes email confirmation via the tokenized link.
func ConfirmUser(svc identitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "identity service unavailable"))
			return
		}

		token := chi.URLParam(r, "token")
		if err := svc.Confirm(r.Context(), token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteText(w, http.StatusOK, "Email confirmed successfully. You can now close this tab.")
	}
}
