// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package slide manages the hero carousel on the public landing page.

# Button compatibility

Slides originally carried a single call-to-action as a text/url pair. The
current model is a list of styled buttons, but the legacy pair is still
written on every save so older consumers keep working:

  - Write: buttons[0] is mirrored into button_text and button_url.
  - Read: a row carrying only the legacy pair is upgraded to a one-entry
    buttons list before it leaves the store.
*/
package slide

import "time"

// Button styles accepted by the public renderer.
const (
	StylePrimary   = "primary"
	StyleSecondary = "secondary"
	StyleOutline   = "outline"
)

// Button is one call-to-action on a slide.
type Button struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Style string `json:"style"`
}

// Slide is one entry of the landing-page carousel.
type Slide struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	ImageURL   string    `json:"image_url"`
	Buttons    []Button  `json:"buttons"`
	ButtonText string    `json:"button_text"`
	ButtonURL  string    `json:"button_url"`
	IsActive   bool      `json:"is_active"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SyncLegacyButton mirrors the first button into the legacy pair, or clears
// the pair when the slide has no buttons.
func (slide *Slide) SyncLegacyButton() {
	if len(slide.Buttons) == 0 {
		slide.ButtonText = ""
		slide.ButtonURL = ""
		return
	}
	slide.ButtonText = slide.Buttons[0].Text
	slide.ButtonURL = slide.Buttons[0].URL
}

// MigrateLegacyButton upgrades a slide that predates the buttons list. A row
// with an empty list but a populated legacy pair gets a canonical one-entry
// list; anything else is left untouched.
func (slide *Slide) MigrateLegacyButton() {
	if len(slide.Buttons) > 0 {
		return
	}
	if slide.Buttons == nil {
		slide.Buttons = []Button{}
	}
	if slide.ButtonText == "" && slide.ButtonURL == "" {
		return
	}
	slide.Buttons = []Button{{
		Text:  slide.ButtonText,
		URL:   slide.ButtonURL,
		Style: StylePrimary,
	}}
}
