// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/docuvault/document-service/internal/bucket"
	"github.com/docuvault/document-service/internal/db"
	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/storage"
	"github.com/docuvault/document-service/internal/tracing"
	"github.com/docuvault/document-service/pkg/auth"
	"github.com/docuvault/document-service/pkg/authentication"
	"github.com/docuvault/document-service/pkg/files"
	"github.com/docuvault/document-service/pkg/metrics"
	"github.com/docuvault/document-service/pkg/organizations"
	"github.com/docuvault/document-service/pkg/status"
	"github.com/docuvault/document-service/pkg/users"
)

// Config carries the handler-level knobs the router needs; connection level
// configuration stays with the clients passed in.
type Config struct {
	MaxUploadSize int64
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	store bucket.BucketInterface,
	tokens authentication.TokenServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	authMiddleware := authentication.NewMiddleware(tokens, tracer, monitor, logger)

	authAPI := auth.NewAPI(
		auth.NewService(s, tokens, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	usersAPI := users.NewAPI(
		users.NewService(s, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	organizationsAPI := organizations.NewAPI(
		organizations.NewService(s, dbClient, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	filesAPI := files.NewAPI(
		files.NewService(s, store, tracer, monitor, logger),
		cfg.MaxUploadSize,
		tracer, monitor, logger,
	)

	// Public surface: signup, account/organization directory and login.
	router.Group(func(r chi.Router) {
		usersAPI.RegisterEndpoints(r)
		organizationsAPI.RegisterEndpoints(r)
		authAPI.RegisterEndpoints(r)
	})

	// Any valid token, bare or scoped.
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate())

		authAPI.RegisterProtectedEndpoints(r)
		organizationsAPI.RegisterProtectedEndpoints(r)
	})

	// Scoped token only: every file operation runs inside one organization.
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate())
		r.Use(authMiddleware.RequireOrganization())

		filesAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
