// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"

	"github.com/docuvault/document-service/internal/types"
)

type ServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
	ActivateOrganization(ctx context.Context, userID, userName, organizationID string) (string, error)
}

type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetMembership(ctx context.Context, userID, organizationID string) (*types.Membership, error)
}
