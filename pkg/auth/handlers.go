// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/docuvault/document-service/internal/http/types"
	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/tracing"
	"github.com/docuvault/document-service/pkg/authentication"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ActivateOrganizationRequest struct {
	OrganizationID string `json:"organization_id" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the public login route.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/auth/login", a.handleLogin)
}

// RegisterProtectedEndpoints mounts the organization activation route; the
// mux passed in is expected to run the authentication middleware first.
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Post("/auth/organization", a.handleActivateOrganization)
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleLogin")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := a.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httptypes.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		a.logger.Errorf("login failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}

func (a *API) handleActivateOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleActivateOrganization")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var req ActivateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "organization_id is required")
		return
	}

	token, err := a.service.ActivateOrganization(ctx, principal.ID, principal.Name, req.OrganizationID)
	if err != nil {
		if errors.Is(err, ErrNotMember) {
			httptypes.WriteError(w, http.StatusForbidden, "not a member of the organization")
			return
		}
		a.logger.Errorf("organization activation failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to activate organization")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}
