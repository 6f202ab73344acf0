// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/docuvault/document-service/internal/db"
	"github.com/docuvault/document-service/internal/types"
)

func (s *Storage) CreateFile(ctx context.Context, f *types.File) (*types.File, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateFile")
	defer span.End()

	var newFile types.File
	err := s.db.Statement(ctx).
		Insert("files").
		Columns("name", "file_key", "file_type", "file_origin", "gross_value", "net_value", "user_id", "organization_id").
		Values(f.Name, f.FileKey, f.FileType, f.FileOrigin, f.GrossValue, f.NetValue, f.UserID, f.OrganizationID).
		Suffix("RETURNING id, name, file_key, file_type, file_origin, gross_value, net_value, user_id, organization_id, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(
			&newFile.ID, &newFile.Name, &newFile.FileKey, &newFile.FileType, &newFile.FileOrigin,
			&newFile.GrossValue, &newFile.NetValue, &newFile.UserID, &newFile.OrganizationID,
			&newFile.CreatedAt, &newFile.UpdatedAt,
		)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert file: %w", err)
	}

	return &newFile, nil
}

// GetFileByID is always scoped by the owning organization so a cross-tenant
// id is indistinguishable from a missing one.
func (s *Storage) GetFileByID(ctx context.Context, id int64, organizationID string) (*types.File, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFileByID")
	defer span.End()

	var f types.File
	err := s.db.Statement(ctx).
		Select("id", "name", "file_key", "file_type", "file_origin", "gross_value", "net_value", "user_id", "organization_id", "created_at", "updated_at").
		From("files").
		Where(sq.Eq{
			"id":              id,
			"organization_id": organizationID,
		}).
		QueryRowContext(ctx).
		Scan(
			&f.ID, &f.Name, &f.FileKey, &f.FileType, &f.FileOrigin,
			&f.GrossValue, &f.NetValue, &f.UserID, &f.OrganizationID,
			&f.CreatedAt, &f.UpdatedAt,
		)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return &f, nil
}

func (s *Storage) ListFiles(ctx context.Context, organizationID string, filter *types.FileFilter) ([]*types.File, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFiles")
	defer span.End()

	if filter == nil {
		filter = new(types.FileFilter)
	}

	preds := filePredicates(organizationID, filter)

	countQuery := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("files f")
	listQuery := s.db.Statement(ctx).
		Select(
			"f.id", "f.name", "f.file_key", "f.file_type", "f.file_origin",
			"f.gross_value", "f.net_value", "f.user_id", "f.organization_id",
			"f.created_at", "f.updated_at",
		).
		From("files f")

	if filter.UserName != "" {
		countQuery = countQuery.Join("users u ON f.user_id = u.id")
		listQuery = listQuery.Join("users u ON f.user_id = u.id")
	}

	for _, p := range preds {
		countQuery = countQuery.Where(p)
		listQuery = listQuery.Where(p)
	}

	var total int64
	if err := countQuery.QueryRowContext(ctx).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count files: %w", err)
	}

	pageSize := db.PageSize(filter.Size)
	listQuery = listQuery.
		OrderBy("f.created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(filter.Page, pageSize))

	rows, err := listQuery.QueryContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	var files []*types.File
	for rows.Next() {
		var f types.File
		if err := rows.Scan(
			&f.ID, &f.Name, &f.FileKey, &f.FileType, &f.FileOrigin,
			&f.GrossValue, &f.NetValue, &f.UserID, &f.OrganizationID,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return files, total, nil
}

// filePredicates accumulates the optional search predicates ANDed onto the
// mandatory tenant filter.
func filePredicates(organizationID string, filter *types.FileFilter) []sq.Sqlizer {
	preds := []sq.Sqlizer{
		sq.Eq{"f.organization_id": organizationID},
	}

	if filter.Name != "" {
		preds = append(preds, sq.ILike{"f.name": "%" + filter.Name + "%"})
	}
	if filter.FileType != "" {
		preds = append(preds, sq.Eq{"f.file_type": filter.FileType})
	}
	if filter.FileOrigin != "" {
		preds = append(preds, sq.Eq{"f.file_origin": filter.FileOrigin})
	}
	if filter.UserName != "" {
		preds = append(preds, sq.ILike{"u.name": "%" + filter.UserName + "%"})
	}
	if filter.DateStart != nil {
		preds = append(preds, sq.GtOrEq{"f.created_at": *filter.DateStart})
	}
	if filter.DateEnd != nil {
		preds = append(preds, sq.LtOrEq{"f.created_at": *filter.DateEnd})
	}
	if filter.GrossValue != nil {
		preds = append(preds, sq.Eq{"f.gross_value": *filter.GrossValue})
	}
	if filter.NetValue != nil {
		preds = append(preds, sq.Eq{"f.net_value": *filter.NetValue})
	}

	return preds
}

func (s *Storage) UpdateFile(ctx context.Context, f *types.File) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateFile")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("files").
		Set("name", f.Name).
		Set("file_type", f.FileType).
		Set("file_origin", f.FileOrigin).
		Set("gross_value", f.GrossValue).
		Set("net_value", f.NetValue).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"id":              f.ID,
			"organization_id": f.OrganizationID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update file: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteFile removes the row and returns the deleted metadata so the caller
// can clean up the stored object.
func (s *Storage) DeleteFile(ctx context.Context, id int64, organizationID string) (*types.File, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteFile")
	defer span.End()

	var f types.File
	err := s.db.Statement(ctx).
		Delete("files").
		Where(sq.Eq{
			"id":              id,
			"organization_id": organizationID,
		}).
		Suffix("RETURNING id, name, file_key, file_type, file_origin, gross_value, net_value, user_id, organization_id, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(
			&f.ID, &f.Name, &f.FileKey, &f.FileType, &f.FileOrigin,
			&f.GrossValue, &f.NetValue, &f.UserID, &f.OrganizationID,
			&f.CreatedAt, &f.UpdatedAt,
		)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete file: %w", err)
	}

	return &f, nil
}
