// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bucket

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/tracing"
)

type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	URLExpiry time.Duration
	// PathStyle is required for MinIO
	PathStyle bool
}

var _ BucketInterface = (*Client)(nil)

// Client wraps an S3-compatible object store holding the documents.
type Client struct {
	s3      *s3.Client
	presign *s3.PresignClient

	bucket    string
	urlExpiry time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "bucket.Client.Upload")
	defer span.End()

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return key, nil
}

func (c *Client) SignedURL(ctx context.Context, key string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "bucket.Client.SignedURL")
	defer span.End()

	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(c.urlExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign object URL: %w", err)
	}

	return req.URL, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	ctx, span := c.tracer.Start(ctx, "bucket.Client.Delete")
	defer span.End()

	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

func (c *Client) EnsureBucket(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "bucket.Client.EnsureBucket")
	defer span.End()

	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.bucket)})
	if err == nil {
		return nil
	}

	c.logger.Infof("bucket %q not found, creating", c.bucket)
	if _, err := c.s3.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(c.bucket)}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", c.bucket, err)
	}

	return nil
}

func NewClient(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load object store config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	c := new(Client)
	c.s3 = s3Client
	c.presign = s3.NewPresignClient(s3Client)
	c.bucket = cfg.Bucket
	c.urlExpiry = cfg.URLExpiry

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
