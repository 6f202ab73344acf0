// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/docuvault/document-service/internal/http/types"
	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/storage"
	"github.com/docuvault/document-service/internal/tracing"
	"github.com/docuvault/document-service/internal/types"
	"github.com/docuvault/document-service/pkg/authentication"
)

type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required"`
}

type ListOrganizationsResponse struct {
	Organizations []*types.Organization `json:"organizations"`
	Total         int                   `json:"total"`
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

// RegisterEndpoints mounts list/get. Creation needs an authenticated caller
// and is registered separately so the router can guard it.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/organizations", a.handleList)
	mux.Get("/organizations/{id}", a.handleGet)
}

// RegisterProtectedEndpoints mounts the creation route; the mux passed in is
// expected to run the authentication middleware first.
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Post("/organizations", a.handleCreate)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.handleCreate")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "organization name is required")
		return
	}

	org, err := a.service.CreateOrganization(ctx, req.Name, principal.ID)
	if err != nil {
		a.logger.Errorf("failed to create organization: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to create organization")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, org)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.handleList")
	defer span.End()

	orgs, err := a.service.ListOrganizations(ctx)
	if err != nil {
		a.logger.Errorf("failed to list organizations: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list organizations")
		return
	}
	if len(orgs) == 0 {
		httptypes.WriteError(w, http.StatusNotFound, "no organizations found")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, ListOrganizationsResponse{Organizations: orgs, Total: len(orgs)})
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.handleGet")
	defer span.End()

	org, err := a.service.GetOrganization(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteError(w, http.StatusNotFound, "organization not found")
			return
		}
		a.logger.Errorf("failed to get organization: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to get organization")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, org)
}
