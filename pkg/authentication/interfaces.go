// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenIssuerInterface interface {
	// Issue mints a signed, time-limited token carrying the principal's claims
	Issue(ctx context.Context, p *Principal) (string, error)
}

type TokenVerifierInterface interface {
	// Verify checks signature and expiry of a raw token string.
	// Returns the embedded principal if the token is valid, otherwise an error.
	// Membership is never re-checked here.
	Verify(ctx context.Context, rawToken string) (*Principal, error)
}

type TokenServiceInterface interface {
	TokenIssuerInterface
	TokenVerifierInterface
}
