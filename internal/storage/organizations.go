// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/docuvault/document-service/internal/types"
)

func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var newOrg types.Organization
	err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "owner_id").
		Values(id.String(), o.Name, o.OwnerID).
		Suffix("RETURNING id, name, owner_id, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&newOrg.ID, &newOrg.Name, &newOrg.OwnerID, &newOrg.CreatedAt, &newOrg.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &newOrg, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "owner_id", "created_at", "updated_at").
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.OwnerID, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "owner_id", "created_at", "updated_at").
		From("organizations").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.OwnerID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

func (s *Storage) AddMember(ctx context.Context, userID, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_organizations").
		Columns("user_id", "organization_id").
		Values(userID, organizationID).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add member: %w", err)
	}

	return nil
}

func (s *Storage) GetMembership(ctx context.Context, userID, organizationID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("user_id", "organization_id").
		From("user_organizations").
		Where(sq.Eq{
			"user_id":         userID,
			"organization_id": organizationID,
		}).
		QueryRowContext(ctx).
		Scan(&m.UserID, &m.OrganizationID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}
