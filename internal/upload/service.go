// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package upload relays admin file uploads to the object store.

Client-supplied content types are never trusted. The first bytes of every
file are sniffed; only image formats the public site renders and PDF
documents pass, each under its own size limit. A rejected file is never
written to storage.
*/
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/demirhancelik/corporate-api/internal/platform/apperr"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/pkg/uuidv7"
)

// ObjectStore is the subset of the storage client the service needs.
type ObjectStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

// sniffLen covers http.DetectContentType's longest signature.
const sniffLen = 512

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Service validates and stores uploaded files.
type Service struct {
	store  ObjectStore
	logger *slog.Logger
}

// NewService constructs an upload Service.
func NewService(store ObjectStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Result is the response of a successful upload.
type Result struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

/*
Save validates an uploaded file and writes it to the object store.

Description: Sniffs the real content type from the file's first bytes,
enforces the per-type size limit, and streams the file to storage under a
key scoped by kind (gallery, slides, certificates, ...). The declared size
from the multipart header is checked before any byte reaches storage.

Parameters:
  - kind: Key prefix grouping uploads by admin screen
  - filename: Original client filename, used only for logging
  - size: Declared file size from the multipart header
  - reader: The file content

Returns:
  - *Result: The public URL with the stored key and detected type
  - error: Validation rejections (no object written) or storage errors
*/
func (service *Service) Save(ctx context.Context, kind, filename string, size int64, reader io.Reader) (*Result, error) {
	if size <= 0 {
		return nil, apperr.ValidationError("Uploaded file is empty")
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(reader, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, apperr.Internal(err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	limit, extension, err := classify(contentType)
	if err != nil {
		return nil, err
	}
	if size > limit {
		return nil, apperr.Unprocessable(fmt.Sprintf(
			"File exceeds the %d MB limit for its type", limit/(1<<20)))
	}

	key := buildKey(kind, extension)
	body := io.MultiReader(bytes.NewReader(head), reader)

	url, err := service.store.Put(ctx, key, body, size, contentType)
	if err != nil {
		return nil, err
	}

	service.logger.Info("file_uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int64("size_bytes", size),
		slog.String("filename", filename),
	)

	return &Result{
		URL:         url,
		Key:         key,
		ContentType: contentType,
		SizeBytes:   size,
	}, nil
}

/*
Delete removes a previously uploaded object from the store.

Description: Takes the storage key returned by Save, as kept by the admin
panel next to the public URL. Anything that does not look like a key Save
could have produced (absolute paths, traversal segments, missing kind
prefix) is rejected before reaching storage.

Returns:
  - error: Validation rejections or storage-side failures
*/
func (service *Service) Delete(ctx context.Context, key string) error {
	if key == "" || key != path.Clean(key) ||
		strings.HasPrefix(key, "/") || strings.Contains(key, "..") ||
		!strings.Contains(key, "/") {
		return apperr.ValidationError("Invalid object key")
	}

	if err := service.store.Remove(ctx, key); err != nil {
		return err
	}

	service.logger.Info("file_removed", slog.String("key", key))
	return nil
}

// classify maps a sniffed content type to its size limit and extension.
func classify(contentType string) (limit int64, extension string, err error) {
	if extension, ok := imageExtensions[contentType]; ok {
		return constants.MaxImageUploadBytes, extension, nil
	}
	if contentType == "application/pdf" {
		return constants.MaxDocumentUploadBytes, ".pdf", nil
	}
	return 0, "", apperr.Unprocessable("Only JPEG, PNG, WebP, GIF images and PDF documents are accepted")
}

// buildKey produces a collision-free object key scoped by kind and month.
func buildKey(kind, extension string) string {
	segment := strings.ToLower(strings.Trim(path.Clean(kind), "/."))
	if segment == "" || strings.Contains(segment, "/") {
		segment = "misc"
	}
	return fmt.Sprintf("%s/%s/%s%s", segment, time.Now().Format("2006-01"), uuidv7.New(), extension)
}
