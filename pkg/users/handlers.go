// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

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
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type ListUsersResponse struct {
	Users []*types.User `json:"users"`
	Total int           `json:"total"`
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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/users", a.handleCreate)
	mux.Get("/users", a.handleList)
	mux.Get("/users/{id}", a.handleGet)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleCreate")
	defer span.End()

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "name, email and password (min 8 chars) are required")
		return
	}

	user, err := a.service.CreateUser(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			httptypes.WriteError(w, http.StatusConflict, "email is already registered")
			return
		}
		a.logger.Errorf("failed to create user: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, user)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleList")
	defer span.End()

	users, err := a.service.ListUsers(ctx)
	if err != nil {
		a.logger.Errorf("failed to list users: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if len(users) == 0 {
		httptypes.WriteError(w, http.StatusNotFound, "no users found")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, ListUsersResponse{Users: users, Total: len(users)})
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleGet")
	defer span.End()

	user, err := a.service.GetUser(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		a.logger.Errorf("failed to get user: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to get user")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, user)
}
