// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type User struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Organization struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Membership is the sole source of truth for "user may act within org".
type Membership struct {
	UserID         string `db:"user_id" json:"user_id"`
	OrganizationID string `db:"organization_id" json:"organization_id"`
}

const (
	FileTypeDocument = "document"
	FileTypeInvoice  = "invoice"
	FileTypeReceipt  = "receipt"
	FileTypeReport   = "report"

	FileOriginUpload      = "upload"
	FileOriginIntegration = "integration"
)

type File struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	FileKey        string    `db:"file_key" json:"-"`
	FileType       string    `db:"file_type" json:"file_type"`
	FileOrigin     string    `db:"file_origin" json:"file_origin"`
	GrossValue     *float64  `db:"gross_value" json:"gross_value,omitempty"`
	NetValue       *float64  `db:"net_value" json:"net_value,omitempty"`
	UserID         string    `db:"user_id" json:"user_id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// FileFilter carries the optional predicates for file searches. Zero values
// mean "no constraint"; the owning organization filter is always applied by
// the storage layer and is not part of this struct.
type FileFilter struct {
	Name       string
	FileType   string
	FileOrigin string
	UserName   string
	DateStart  *time.Time
	DateEnd    *time.Time
	GrossValue *float64
	NetValue   *float64

	Page int64
	Size int64
}
