// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Principal is the verified identity attached to a request. OrganizationID is
// empty for bare tokens and set only when the token was issued by the
// organization-activation exchange.
type Principal struct {
	ID             string
	Name           string
	OrganizationID string
}

// Define a private custom type to avoid collisions
type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context with the given principal derived from the parent context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext retrieves the authenticated principal from the context.
// Returns nil and false if no principal is present.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}
