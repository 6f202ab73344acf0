// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"context"
	"io"

	"github.com/docuvault/document-service/internal/types"
)

// CreateFileInput carries the upload content plus the metadata fields from
// the multipart form.
type CreateFileInput struct {
	Name        string
	FileType    string
	FileOrigin  string
	GrossValue  *float64
	NetValue    *float64
	Content     io.Reader
	ContentType string
}

// UpdateFileInput carries the mutable metadata fields; nil means unchanged.
type UpdateFileInput struct {
	Name       *string
	FileType   *string
	GrossValue *float64
	NetValue   *float64
}

type ServiceInterface interface {
	CreateFile(ctx context.Context, userID, organizationID string, in *CreateFileInput) (*types.File, error)
	GetFile(ctx context.Context, id int64, organizationID string) (*types.File, string, error)
	ListFiles(ctx context.Context, organizationID string, filter *types.FileFilter) ([]*types.File, int64, error)
	UpdateFile(ctx context.Context, id int64, organizationID string, in *UpdateFileInput) (*types.File, error)
	DeleteFile(ctx context.Context, id int64, organizationID string) error
}

type StorageInterface interface {
	CreateFile(ctx context.Context, f *types.File) (*types.File, error)
	GetFileByID(ctx context.Context, id int64, organizationID string) (*types.File, error)
	ListFiles(ctx context.Context, organizationID string, filter *types.FileFilter) ([]*types.File, int64, error)
	UpdateFile(ctx context.Context, f *types.File) error
	DeleteFile(ctx context.Context, id int64, organizationID string) (*types.File, error)
}

// ObjectStoreInterface is the slice of the bucket client the file service
// needs.
type ObjectStoreInterface interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	SignedURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
