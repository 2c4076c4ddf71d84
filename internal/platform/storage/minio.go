// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package storage provides a managed client for S3-compatible object storage.

All uploaded site media (project photos, hero slides, gallery images, scanned
certificates) is persisted here; PostgreSQL only ever stores the resulting
public URL.

Core Responsibilities:

  - Durability: Objects survive application restarts and redeploys.
  - Addressing: Every stored object resolves to a stable public URL.
  - Isolation: Handlers never touch the MinIO SDK directly.
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options configures the object storage client.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicBaseURL overrides the endpoint when building public object URLs
	// (e.g. a CDN domain). Empty means the endpoint itself is public.
	PublicBaseURL string
}

// Client wraps a MinIO connection scoped to a single bucket.
type Client struct {
	minioClient   *minio.Client
	bucket        string
	publicBaseURL string
}

// NewClient connects to the object store and ensures the bucket exists.
//
// # Parameters
//   - ctx: Context for the initial bucket check.
//   - opts: Connection and bucket settings.
//   - logger: Structured logger for connection events.
func NewClient(ctx context.Context, opts Options, logger *slog.Logger) (*Client, error) {
	minioClient, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create client: %w", err)
	}

	exists, err := minioClient.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to check bucket %q: %w", opts.Bucket, err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: failed to create bucket %q: %w", opts.Bucket, err)
		}
	}

	publicBaseURL := strings.TrimSuffix(opts.PublicBaseURL, "/")
	if publicBaseURL == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		publicBaseURL = fmt.Sprintf("%s://%s/%s", scheme, opts.Endpoint, opts.Bucket)
	}

	logger.Info("object storage connected",
		slog.String("endpoint", opts.Endpoint),
		slog.String("bucket", opts.Bucket),
	)

	return &Client{
		minioClient:   minioClient,
		bucket:        opts.Bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

/*
Put streams an object into the bucket and returns its public URL.

Parameters:
  - ctx: context.Context
  - key: Object path inside the bucket (e.g. "projects/0198x.../photo.jpg")
  - reader: Object content
  - size: Exact content length in bytes
  - contentType: MIME type stored with the object

Returns:
  - string: Publicly addressable URL of the stored object
  - error: Connectivity or storage-side failures
*/
func (client *Client) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := client.minioClient.PutObject(ctx, client.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to put object %q: %w", key, err)
	}

	return client.publicBaseURL + "/" + key, nil
}

/*
Remove deletes an object from the bucket.

Removal is idempotent: deleting an absent key is not an error.
*/
func (client *Client) Remove(ctx context.Context, key string) error {
	if err := client.minioClient.RemoveObject(ctx, client.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: failed to remove object %q: %w", key, err)
	}
	return nil
}

// Ping verifies the object store is reachable by probing the bucket.
func (client *Client) Ping(ctx context.Context) error {
	if _, err := client.minioClient.BucketExists(ctx, client.bucket); err != nil {
		return fmt.Errorf("storage: ping failed: %w", err)
	}
	return nil
}
