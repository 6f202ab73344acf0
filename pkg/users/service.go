// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/password"
	"github.com/docuvault/document-service/internal/storage"
	"github.com/docuvault/document-service/internal/tracing"
	"github.com/docuvault/document-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateUser hashes the password and persists the account. A duplicate email
// surfaces storage.ErrDuplicateKey unchanged so the handler can map it.
func (s *Service) CreateUser(ctx context.Context, name, email, plaintext string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CreateUser")
	defer span.End()

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.storage.CreateUser(ctx, &types.User{
		Name:     name,
		Email:    email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GetUser")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
