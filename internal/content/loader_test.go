// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package content_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/content"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
)

// fakeSource serves canned document bytes per (key, language).
type fakeSource struct {
	documents map[string][]byte
}

func (source *fakeSource) GetDocument(_ context.Context, _ content.SlotKind, key, language string) ([]byte, error) {
	raw, ok := source.documents[key+"/"+language]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return raw, nil
}

func newLoader(documents map[string][]byte) *content.Loader {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return content.NewLoader(&fakeSource{documents: documents}, logger)
}

/*
TestLoad_AbsentReturnsDefault verifies that a slot nobody has edited yet
resolves to the registered default unchanged.
*/
func TestLoad_AbsentReturnsDefault(t *testing.T) {
	loader := newLoader(nil)
	def := content.DefaultHome("tr")

	document := content.Load(context.Background(), loader, content.KeyHome, "tr", def)

	assert.Equal(t, def.HeroTitle, document.HeroTitle)
	assert.Equal(t, def.Features, document.Features)
	assert.Equal(t, def.Stats, document.Stats)
}

/*
TestLoad_MalformedFailsOpen verifies that a corrupt persisted document
degrades to the default instead of surfacing an error.
*/
func TestLoad_MalformedFailsOpen(t *testing.T) {
	loader := newLoader(map[string][]byte{
		content.KeyHome + "/tr": []byte(`{"hero_title": `),
	})
	def := content.DefaultHome("tr")

	document := content.Load(context.Background(), loader, content.KeyHome, "tr", def)

	assert.Equal(t, def.HeroTitle, document.HeroTitle)
}

/*
TestLoad_ValidDocumentWins verifies that persisted data replaces the
default when it decodes cleanly.
*/
func TestLoad_ValidDocumentWins(t *testing.T) {
	loader := newLoader(map[string][]byte{
		content.KeyHome + "/en": []byte(`{"hero_title": "Edited Title", "features": [{"icon": "factory", "title": "Fabrication", "text": "In-house"}]}`),
	})

	document := content.Load(context.Background(), loader, content.KeyHome, "en", content.DefaultHome("en"))

	assert.Equal(t, "Edited Title", document.HeroTitle)
	require.Len(t, document.Features, 1)
	assert.Equal(t, "Fabrication", document.Features[0].Title)
}

/*
TestLoad_EmptyListsGetPlaceholders verifies that list fields are never
empty after loading: a persisted document with empty arrays comes back
with single placeholder entries so admin forms always show one row.
*/
func TestLoad_EmptyListsGetPlaceholders(t *testing.T) {
	loader := newLoader(map[string][]byte{
		content.KeyHome + "/tr":  []byte(`{"hero_title": "Başlık", "features": [], "stats": []}`),
		content.KeyAbout + "/tr": []byte(`{"story_title": "Hikayemiz", "story_paragraphs": [], "values": []}`),
	})

	home := content.Load(context.Background(), loader, content.KeyHome, "tr", content.DefaultHome("tr"))
	assert.NotEmpty(t, home.Features)
	assert.NotEmpty(t, home.Stats)

	about := content.Load(context.Background(), loader, content.KeyAbout, "tr", content.DefaultAbout("tr"))
	assert.NotEmpty(t, about.StoryParagraphs)
	assert.NotEmpty(t, about.Values)
}

/*
TestDefaults_PerLanguage verifies that each supported language carries its
own default literals and both normalize to fully-populated documents.
*/
func TestDefaults_PerLanguage(t *testing.T) {
	for _, language := range []string{"tr", "en"} {
		home := content.DefaultHome(language)
		home.Normalize()
		assert.NotEmpty(t, home.HeroTitle, "language %s", language)
		assert.NotEmpty(t, home.Features, "language %s", language)

		footer := content.DefaultFooter(language)
		footer.Normalize()
		assert.NotEmpty(t, footer.CompanyName, "language %s", language)
		assert.NotEmpty(t, footer.QuickLinks, "language %s", language)
	}

	assert.NotEqual(t, content.DefaultHome("tr").HeroTitle, content.DefaultHome("en").HeroTitle)
}
