// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package content

import (
	"context"
	"encoding/json"
	"log/slog"
)

// # Defaulted Entity Loader
//
// The read path for layout documents. It guarantees the caller an
// always-valid, fully-populated document regardless of whether persisted
// data exists, is partial, or is malformed:
//
//   - no persisted row        → the registered default, unchanged
//   - persisted but malformed → log, return the default (fail open)
//   - persisted and valid     → decoded value, placeholder-normalized
//
// The loader never returns an error to the caller; a broken row degrades
// to default content, not to a failed page.

// DocumentSource is the minimal read contract the loader needs.
//
// Implementations return [dberr.ErrNotFound]-wrapped errors when no row
// exists; the loader treats every error as "absent".
type DocumentSource interface {
	GetDocument(ctx context.Context, kind SlotKind, key, language string) ([]byte, error)
}

// Normalizer is implemented by documents that enforce placeholder rules
// after decoding (list fields are never empty).
type Normalizer interface {
	Normalize()
}

// Loader resolves layout documents against their registered defaults.
type Loader struct {
	source DocumentSource
	logger *slog.Logger
}

// NewLoader constructs a Loader over a document source.
func NewLoader(source DocumentSource, logger *slog.Logger) *Loader {
	return &Loader{source: source, logger: logger}
}

/*
Load resolves the document for (key, language) against the provided default.

Description: The generic defaulted read. T is a pointer-normalizable document
type; def is the registered default from defaults.go and is returned as-is
(after normalization) whenever persisted data is missing or unreadable.

Parameters:
  - ctx: context.Context
  - loader: *Loader
  - key: Layout slot key (e.g. content.KeyHome)
  - language: "tr" or "en"
  - def: Registered default document

Returns:
  - T: A fully-populated document. Never an error: the loader fails open.
*/
func Load[T any, PT interface {
	*T
	Normalizer
}](ctx context.Context, loader *Loader, key, language string, def T) T {

	// Defaults are normalized too, so a sparse default literal still
	// honors the placeholder rules.
	PT(&def).Normalize()

	raw, err := loader.source.GetDocument(ctx, KindLayout, key, language)
	if err != nil {
		// Absent (or unreadable storage) → default. Absence is the normal
		// state for a slot nobody has edited yet, so no logging here.
		return def
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Malformed persisted data must never break the public site.
		loader.logger.Warn("content_document_malformed",
			slog.String("key", key),
			slog.String("language", language),
			slog.Any("error", err),
		)
		return def
	}

	PT(&decoded).Normalize()
	return decoded
}
