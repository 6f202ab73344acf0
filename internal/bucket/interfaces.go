// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bucket

import (
	"context"
	"io"
)

type BucketInterface interface {
	// Upload stores the object under key and returns the key.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	// SignedURL returns a presigned, time-limited GET URL for the object.
	SignedURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// EnsureBucket creates the configured bucket if it does not exist yet.
	EnsureBucket(ctx context.Context) error
}
