// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	JWTSecret string        `envconfig:"jwt_secret" required:"true"`
	JWTExpiry time.Duration `envconfig:"jwt_expiry" default:"60s"`

	StorageEndpoint  string        `envconfig:"storage_endpoint" required:"true"`
	StorageRegion    string        `envconfig:"storage_region" default:"us-east-1"`
	StorageAccessKey string        `envconfig:"storage_access_key" required:"true"`
	StorageSecretKey string        `envconfig:"storage_secret_key" required:"true"`
	StorageBucket    string        `envconfig:"storage_bucket" default:"documents"`
	StorageURLExpiry time.Duration `envconfig:"storage_url_expiry" default:"1h"`
	StoragePathStyle bool          `envconfig:"storage_path_style" default:"true"`

	MaxUploadSize int64 `envconfig:"max_upload_size" default:"1000000"`
}
