// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a no-op token verifier that allows all requests.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// Verify treats the token as the user ID for development purposes.
func (n *NoopVerifier) Verify(ctx context.Context, rawToken string) (*Principal, error) {
	return &Principal{ID: rawToken}, nil
}
