// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package content manages every editable content slot on the site.

A content slot is a named, typed unit of editable page text or structure
("about page story", "footer company info", "home hero"). All slots are
server-authoritative and live in the content.slot table keyed by
(kind, key, language); there is no browser-local storage path.

Architecture:

  - Entities: ContentSlot rows plus typed layout documents (Home/About/Footer).
  - Loader: the defaulted read path — persisted data merged against shared
    defaults so renderers never see a missing field.
  - Service: admin CRUD with last-write-wins semantics and cache invalidation.
*/
package content

import (
	"encoding/json"
	"time"
)

// # Slot Taxonomy

// SlotKind distinguishes simple text slots from structured layout documents.
type SlotKind string

const (
	// KindPage is a plain title/body text slot (e.g. mission statement).
	KindPage SlotKind = "page"

	// KindLayout is a structured JSON document rendered into a page section.
	KindLayout SlotKind = "layout"
)

// Layout slot keys. Each has a registered default in defaults.go.
const (
	KeyHome   = "home"
	KeyAbout  = "about"
	KeyFooter = "footer"
)

// ContentSlot represents one editable content unit.
//
// Uniqueness over (kind, key, language) is enforced by the store; admin
// writes are full replacements with last-write-wins semantics.
type ContentSlot struct {
	ID       string   `json:"id"`
	Kind     SlotKind `json:"kind"`
	Key      string   `json:"key"`
	Language string   `json:"language"`

	// Title and Body carry plain-text page slots.
	Title string `json:"title"`
	Body  string `json:"body"`

	// Document carries the JSON payload of layout slots; nil for page slots.
	Document json.RawMessage `json:"document,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Layout Documents

// Feature is one highlighted capability on the home page.
type Feature struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Stat is a single headline figure (e.g. "Tamamlanan Proje: 250+").
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// HomeDocument is the editable structure of the public home page.
type HomeDocument struct {
	HeroTitle    string    `json:"hero_title"`
	HeroSubtitle string    `json:"hero_subtitle"`
	Features     []Feature `json:"features"`
	Stats        []Stat    `json:"stats"`
}

// ValueItem is one company value on the about page.
type ValueItem struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// AboutDocument is the editable structure of the about page.
type AboutDocument struct {
	StoryTitle      string      `json:"story_title"`
	StoryParagraphs []string    `json:"story_paragraphs"`
	Mission         string      `json:"mission"`
	Vision          string      `json:"vision"`
	Values          []ValueItem `json:"values"`
}

// FooterLink is one navigation entry in the footer link column.
type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// FooterDocument is the editable structure of the site footer.
type FooterDocument struct {
	CompanyName string       `json:"company_name"`
	Tagline     string       `json:"tagline"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	QuickLinks  []FooterLink `json:"quick_links"`
}

// # Placeholder Normalization
//
// Admin forms render one input row per list element, so an empty list would
// leave nothing to edit. Normalize guarantees at least one (placeholder)
// element in every list-valued field.

// Normalize implements [Normalizer] for HomeDocument.
func (d *HomeDocument) Normalize() {
	if len(d.Features) == 0 {
		d.Features = []Feature{{}}
	}
	if len(d.Stats) == 0 {
		d.Stats = []Stat{{}}
	}
}

// Normalize implements [Normalizer] for AboutDocument.
func (d *AboutDocument) Normalize() {
	if len(d.StoryParagraphs) == 0 {
		d.StoryParagraphs = []string{""}
	}
	if len(d.Values) == 0 {
		d.Values = []ValueItem{{}}
	}
}

// Normalize implements [Normalizer] for FooterDocument.
func (d *FooterDocument) Normalize() {
	if len(d.QuickLinks) == 0 {
		d.QuickLinks = []FooterLink{{}}
	}
}
