// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/docuvault/document-service/internal/types"
)

type ServiceInterface interface {
	CreateUser(ctx context.Context, name, email, password string) (*types.User, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
}
