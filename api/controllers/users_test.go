package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	identitysvc "github.com/nordmart/storefront-backend/internal/identity"
	pkgerrors "github.com/nordmart/storefront-backend/pkg/errors"
)

type stubIdentityService struct {
	result     *identitysvc.IdentifyResult
	identifyFn func(input identitysvc.IdentifyInput) (*identitysvc.IdentifyResult, error)
	confirmErr error
}

func (s stubIdentityService) Identify(_ context.Context, input identitysvc.IdentifyInput) (*identitysvc.IdentifyResult, error) {
	if s.identifyFn != nil {
		return s.identifyFn(input)
	}
	return s.result, nil
}

func (s stubIdentityService) Confirm(_ context.Context, _ string) error {
	return s.confirmErr
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestIdentifyUserPlaceholder(t *testing.T) {
	handler := IdentifyUser(stubIdentityService{
		result: &identitysvc.IdentifyResult{DeviceID: "dev-1"},
	}, nil)

	body := bytes.NewBufferString(`{"device_id":"dev-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/identify", body)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var payload map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["device_id"] != "dev-1" {
		t.Fatalf("expected bare device_id payload, got %v", payload)
	}
	if _, ok := payload["username"]; ok {
		t.Fatalf("placeholder should not carry profile fields: %v", payload)
	}
}

func TestIdentifyUserCreated(t *testing.T) {
	handler := IdentifyUser(stubIdentityService{
		result: &identitysvc.IdentifyResult{
			User:     &identitysvc.UserDTO{DeviceID: "dev-1", Username: "alice"},
			DeviceID: "dev-1",
			Created:  true,
		},
	}, nil)

	body := bytes.NewBufferString(`{"device_id":"dev-1","username":"alice","email":"a@b.co","phone_number":"+1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/identify", body)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}

	var user identitysvc.UserDTO
	if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected created user payload, got %+v", user)
	}
}

func TestIdentifyUserMissingDevice(t *testing.T) {
	handler := IdentifyUser(stubIdentityService{
		identifyFn: func(_ identitysvc.IdentifyInput) (*identitysvc.IdentifyResult, error) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Device ID required")
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/identify", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Device ID required") {
		t.Fatalf("expected flat error message, got %s", rec.Body.String())
	}
}

func TestConfirmUserSuccess(t *testing.T) {
	handler := ConfirmUser(stubIdentityService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/confirm/tok-1", nil)
	req = withURLParam(req, "token", "tok-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected plaintext response, got %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "confirmed") {
		t.Fatalf("unexpected confirmation body: %s", rec.Body.String())
	}
}

func TestConfirmUserUnknownToken(t *testing.T) {
	handler := ConfirmUser(stubIdentityService{
		confirmErr: pkgerrors.New(pkgerrors.CodeNotFound, "confirmation token not found"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/confirm/nope", nil)
	req = withURLParam(req, "token", "nope")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
