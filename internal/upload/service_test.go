// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package upload_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/upload"
)

// fakeStore records Put and Remove calls without touching a real object store.
type fakeStore struct {
	putCalls    int
	lastKey     string
	lastType    string
	lastPayload []byte
	removedKeys []string
}

func (store *fakeStore) Put(_ context.Context, key string, reader io.Reader, _ int64, contentType string) (string, error) {
	payload, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	store.putCalls++
	store.lastKey = key
	store.lastType = contentType
	store.lastPayload = payload
	return "https://cdn.demirhancelik.com/" + key, nil
}

func (store *fakeStore) Remove(_ context.Context, key string) error {
	store.removedKeys = append(store.removedKeys, key)
	return nil
}

func newService(store *fakeStore) *upload.Service {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return upload.NewService(store, logger)
}

// pngFile builds a payload whose sniffed type is image/png.
func pngFile(size int) []byte {
	payload := make([]byte, size)
	copy(payload, []byte("\x89PNG\r\n\x1a\n"))
	return payload
}

// pdfFile builds a payload whose sniffed type is application/pdf.
func pdfFile(size int) []byte {
	payload := make([]byte, size)
	copy(payload, []byte("%PDF-1.7"))
	return payload
}

/*
TestSave_AcceptsImage verifies that a valid PNG is stored under a
kind-scoped key with its sniffed content type, and that the stored bytes
include the sniffed prefix.
*/
func TestSave_AcceptsImage(t *testing.T) {
	store := &fakeStore{}
	service := newService(store)

	payload := pngFile(4096)
	result, err := service.Save(context.Background(), "gallery", "fabrika.png", int64(len(payload)), bytes.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, 1, store.putCalls)
	assert.Equal(t, "image/png", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Key, "gallery/"), "key %q", result.Key)
	assert.True(t, strings.HasSuffix(result.Key, ".png"), "key %q", result.Key)
	assert.Equal(t, payload, store.lastPayload)
	assert.Equal(t, "https://cdn.demirhancelik.com/"+result.Key, result.URL)
}

/*
TestSave_AcceptsPDF verifies that a PDF within its limit is stored.
*/
func TestSave_AcceptsPDF(t *testing.T) {
	store := &fakeStore{}
	service := newService(store)

	payload := pdfFile(64 * 1024)
	result, err := service.Save(context.Background(), "certificates", "iso9001.pdf", int64(len(payload)), bytes.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Key, ".pdf"), "key %q", result.Key)
}

/*
TestSave_RejectsOversize verifies the per-type size limits and that no
object is written for a rejected file.
*/
func TestSave_RejectsOversize(t *testing.T) {
	testCases := []struct {
		name string
		head []byte
		size int64
	}{
		{"image over 5 MiB", pngFile(1024), constants.MaxImageUploadBytes + 1},
		{"pdf over 10 MiB", pdfFile(1024), constants.MaxDocumentUploadBytes + 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			store := &fakeStore{}
			service := newService(store)

			// The declared size, not the bytes read so far, trips the limit.
			_, err := service.Save(context.Background(), "gallery", "big.bin", testCase.size, bytes.NewReader(testCase.head))

			assert.Error(t, err)
			assert.Equal(t, 0, store.putCalls)
		})
	}
}

/*
TestSave_RejectsUnknownType verifies that content sniffing, not the
filename, decides acceptance: a text file named .png is rejected before
any storage write.
*/
func TestSave_RejectsUnknownType(t *testing.T) {
	store := &fakeStore{}
	service := newService(store)

	payload := []byte("<script>alert(1)</script> definitely not an image")
	_, err := service.Save(context.Background(), "gallery", "innocent.png", int64(len(payload)), bytes.NewReader(payload))

	assert.Error(t, err)
	assert.Equal(t, 0, store.putCalls)
}

/*
TestSave_RejectsEmpty verifies that zero-length uploads are rejected.
*/
func TestSave_RejectsEmpty(t *testing.T) {
	store := &fakeStore{}
	service := newService(store)

	_, err := service.Save(context.Background(), "gallery", "empty.png", 0, bytes.NewReader(nil))

	assert.Error(t, err)
	assert.Equal(t, 0, store.putCalls)
}

/*
TestDelete_RemovesStoredObject verifies that a key produced by Save can be
deleted from the store.
*/
func TestDelete_RemovesStoredObject(t *testing.T) {
	store := &fakeStore{}
	service := newService(store)

	payload := pngFile(1024)
	result, err := service.Save(context.Background(), "slides", "hero.png", int64(len(payload)), bytes.NewReader(payload))
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), result.Key))
	assert.Equal(t, []string{result.Key}, store.removedKeys)
}

/*
TestDelete_RejectsMalformedKeys verifies that keys Save could never have
produced are rejected before any storage call.
*/
func TestDelete_RejectsMalformedKeys(t *testing.T) {
	testCases := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"absolute path", "/etc/passwd"},
		{"traversal", "gallery/../users/secrets.pdf"},
		{"unclean", "gallery//2026-08//photo.png"},
		{"no kind prefix", "photo.png"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			store := &fakeStore{}
			service := newService(store)

			assert.Error(t, service.Delete(context.Background(), testCase.key))
			assert.Empty(t, store.removedKeys)
		})
	}
}

/*
TestSave_SanitizesKind verifies that a hostile kind value cannot steer the
object key outside its segment.
*/
func TestSave_SanitizesKind(t *testing.T) {
	store := &fakeStore{}
	service := newService(store)

	payload := pngFile(1024)
	result, err := service.Save(context.Background(), "../../etc/passwd", "x.png", int64(len(payload)), bytes.NewReader(payload))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "misc/"), "key %q", result.Key)
}
