// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"

	"github.com/docuvault/document-service/internal/types"
)

type ServiceInterface interface {
	CreateOrganization(ctx context.Context, name, ownerID string) (*types.Organization, error)
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
}

type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	AddMember(ctx context.Context, userID, organizationID string) error
}
