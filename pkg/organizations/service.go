// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"fmt"

	"github.com/docuvault/document-service/internal/db"
	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/tracing"
	"github.com/docuvault/document-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	dbClient db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		dbClient: dbClient,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateOrganization inserts the organization and the owner's membership row
// in one transaction. Either both rows exist afterwards or neither does.
func (s *Service) CreateOrganization(ctx context.Context, name, ownerID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.CreateOrganization")
	defer span.End()

	var created *types.Organization
	err := s.dbClient.WithTx(ctx, func(txCtx context.Context) error {
		org, err := s.storage.CreateOrganization(txCtx, &types.Organization{
			Name:    name,
			OwnerID: ownerID,
		})
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		if err := s.storage.AddMember(txCtx, ownerID, org.ID); err != nil {
			return fmt.Errorf("failed to add owner membership: %w", err)
		}

		created = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.GetOrganization")
	defer span.End()

	org, err := s.storage.GetOrganizationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return org, nil
}

func (s *Service) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListOrganizations")
	defer span.End()

	orgs, err := s.storage.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return orgs, nil
}
