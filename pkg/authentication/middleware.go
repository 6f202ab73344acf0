// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	httptypes "github.com/docuvault/document-service/internal/http/types"
	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/tracing"
)

// Middleware is the single chokepoint gating protected operations: no
// verified claims, no access.
type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate extracts the bearer credential, verifies it and attaches the
// resulting principal to the request context. Rejections terminate the chain
// before any handler logic runs.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.logger.Security().AuthnFailure("", "missing authorization header")
				httptypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			principal, err := m.verifier.Verify(ctx, token)
			if err != nil {
				m.logger.Debugf("token verification failed: %v", err)
				m.logger.Security().AuthnFailure("", "invalid token")
				httptypes.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx = WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOrganization rejects authenticated requests whose token carries no
// active-organization claim. It must run after Authenticate.
func (m *Middleware) RequireOrganization() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				httptypes.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			if principal.OrganizationID == "" {
				m.logger.Security().AuthzFailure(principal.ID, "organization_scope")
				httptypes.WriteError(w, http.StatusUnauthorized, "no active organization")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getBearerToken treats the whole Authorization value as the token after
// stripping an optional "Bearer " prefix.
func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
