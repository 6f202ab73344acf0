// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/tracing"
	"github.com/docuvault/document-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	store   ObjectStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	store ObjectStoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		store:   store,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateFile uploads the content to the object store, then records the
// metadata row. If the row insert fails the uploaded object is removed again
// on a best-effort basis.
func (s *Service) CreateFile(ctx context.Context, userID, organizationID string, in *CreateFileInput) (*types.File, error) {
	ctx, span := s.tracer.Start(ctx, "files.Service.CreateFile")
	defer span.End()

	objectID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate object id: %w", err)
	}
	// Keys are prefixed per organization so objects of different tenants
	// never collide.
	key := fmt.Sprintf("%s/%s", organizationID, objectID.String())

	if _, err := s.store.Upload(ctx, key, in.Content, in.ContentType); err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	origin := in.FileOrigin
	if origin == "" {
		origin = types.FileOriginUpload
	}

	created, err := s.storage.CreateFile(ctx, &types.File{
		Name:           in.Name,
		FileKey:        key,
		FileType:       in.FileType,
		FileOrigin:     origin,
		GrossValue:     in.GrossValue,
		NetValue:       in.NetValue,
		UserID:         userID,
		OrganizationID: organizationID,
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logger.Errorf("failed to remove orphaned object %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return created, nil
}

// GetFile returns the metadata row together with a presigned download URL.
// Lookups are always scoped to the caller's organization; a file belonging to
// another tenant is indistinguishable from a missing one.
func (s *Service) GetFile(ctx context.Context, id int64, organizationID string) (*types.File, string, error) {
	ctx, span := s.tracer.Start(ctx, "files.Service.GetFile")
	defer span.End()

	file, err := s.storage.GetFileByID(ctx, id, organizationID)
	if err != nil {
		return nil, "", err
	}

	url, err := s.store.SignedURL(ctx, file.FileKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to presign object url: %w", err)
	}

	return file, url, nil
}

func (s *Service) ListFiles(ctx context.Context, organizationID string, filter *types.FileFilter) ([]*types.File, int64, error) {
	ctx, span := s.tracer.Start(ctx, "files.Service.ListFiles")
	defer span.End()

	files, total, err := s.storage.ListFiles(ctx, organizationID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list files: %w", err)
	}

	return files, total, nil
}

func (s *Service) UpdateFile(ctx context.Context, id int64, organizationID string, in *UpdateFileInput) (*types.File, error) {
	ctx, span := s.tracer.Start(ctx, "files.Service.UpdateFile")
	defer span.End()

	file, err := s.storage.GetFileByID(ctx, id, organizationID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		file.Name = *in.Name
	}
	if in.FileType != nil {
		file.FileType = *in.FileType
	}
	if in.GrossValue != nil {
		file.GrossValue = in.GrossValue
	}
	if in.NetValue != nil {
		file.NetValue = in.NetValue
	}

	if err := s.storage.UpdateFile(ctx, file); err != nil {
		return nil, err
	}

	return file, nil
}

// DeleteFile removes the metadata row and then the stored object. A failed
// object deletion is logged, not surfaced: the row is already gone and the
// object is unreachable.
func (s *Service) DeleteFile(ctx context.Context, id int64, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "files.Service.DeleteFile")
	defer span.End()

	deleted, err := s.storage.DeleteFile(ctx, id, organizationID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, deleted.FileKey); err != nil {
		s.logger.Errorf("failed to delete object %s: %v", deleted.FileKey, err)
	}

	return nil
}
