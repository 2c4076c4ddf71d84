// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package slide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/slide"
)

/*
TestSyncLegacyButton verifies that the legacy text/url pair always mirrors
the first entry of the buttons list.
*/
func TestSyncLegacyButton(t *testing.T) {
	entry := &slide.Slide{
		Buttons: []slide.Button{
			{Text: "Projelerimiz", URL: "/projeler", Style: slide.StylePrimary},
			{Text: "İletişim", URL: "/iletisim", Style: slide.StyleOutline},
		},
	}

	entry.SyncLegacyButton()

	assert.Equal(t, "Projelerimiz", entry.ButtonText)
	assert.Equal(t, "/projeler", entry.ButtonURL)
}

/*
TestSyncLegacyButton_NoButtons verifies that removing every button also
clears the legacy pair rather than leaving a stale call-to-action.
*/
func TestSyncLegacyButton_NoButtons(t *testing.T) {
	entry := &slide.Slide{
		Buttons:    []slide.Button{},
		ButtonText: "Eski Buton",
		ButtonURL:  "/eski",
	}

	entry.SyncLegacyButton()

	assert.Empty(t, entry.ButtonText)
	assert.Empty(t, entry.ButtonURL)
}

/*
TestMigrateLegacyButton verifies that a stored row predating the buttons
list is upgraded to a canonical one-entry list on read.
*/
func TestMigrateLegacyButton(t *testing.T) {
	entry := &slide.Slide{
		ButtonText: "Teklif Al",
		ButtonURL:  "/teklif",
	}

	entry.MigrateLegacyButton()

	require.Len(t, entry.Buttons, 1)
	assert.Equal(t, "Teklif Al", entry.Buttons[0].Text)
	assert.Equal(t, "/teklif", entry.Buttons[0].URL)
	assert.Equal(t, slide.StylePrimary, entry.Buttons[0].Style)
}

/*
TestMigrateLegacyButton_ListWins verifies that a populated buttons list is
never overwritten by the legacy pair.
*/
func TestMigrateLegacyButton_ListWins(t *testing.T) {
	entry := &slide.Slide{
		Buttons:    []slide.Button{{Text: "Yeni", URL: "/yeni", Style: slide.StyleSecondary}},
		ButtonText: "Eski",
		ButtonURL:  "/eski",
	}

	entry.MigrateLegacyButton()

	require.Len(t, entry.Buttons, 1)
	assert.Equal(t, "Yeni", entry.Buttons[0].Text)
}

/*
TestMigrateLegacyButton_EmptyRow verifies that a slide without any
call-to-action stays empty but non-nil so responses serialize as [].
*/
func TestMigrateLegacyButton_EmptyRow(t *testing.T) {
	entry := &slide.Slide{}

	entry.MigrateLegacyButton()

	assert.NotNil(t, entry.Buttons)
	assert.Empty(t, entry.Buttons)
}
