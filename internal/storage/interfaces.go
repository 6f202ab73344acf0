// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/docuvault/document-service/internal/types"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)

	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)

	AddMember(ctx context.Context, userID, organizationID string) error
	GetMembership(ctx context.Context, userID, organizationID string) (*types.Membership, error)

	CreateFile(ctx context.Context, f *types.File) (*types.File, error)
	GetFileByID(ctx context.Context, id int64, organizationID string) (*types.File, error)
	ListFiles(ctx context.Context, organizationID string, filter *types.FileFilter) ([]*types.File, int64, error)
	UpdateFile(ctx context.Context, f *types.File) error
	DeleteFile(ctx context.Context, id int64, organizationID string) (*types.File, error)
}
