// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package gallery manages photo categories and images for the public gallery.

Categories own images one-to-many. The admin panel can seed the standard
category set in one call; seeding reports a per-category outcome so an
already-populated database never aborts the batch.
*/
package gallery

import "time"

// GalleryCategory groups images on the public gallery page.
type GalleryCategory struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	SortOrder int            `json:"sort_order"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	Images    []GalleryImage `json:"images,omitempty"`
}

// GalleryImage is one photo inside a category.
type GalleryImage struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"category_id"`
	URL           string    `json:"url"`
	AltText       string    `json:"alt_text"`
	SortOrder     int       `json:"sort_order"`
	IsActive      bool      `json:"is_active"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	CreatedAt     time.Time `json:"created_at"`
}

// Seed outcomes reported per category by LoadDefaultCategories.
const (
	SeedCreated       = "created"
	SeedAlreadyExists = "already_exists"
	SeedFailed        = "failed"
)

// SeedResult is the per-category outcome of a seeding run.
type SeedResult struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

// DefaultCategoryNames is the standard category set for the company gallery,
// in display order.
var DefaultCategoryNames = []string{
	"Fabrika",
	"Üretim",
	"Montaj",
	"Çelik Konstrüksiyon",
	"Endüstriyel Tesisler",
	"Depo ve Hangar",
	"Enerji Tesisleri",
	"Spor Tesisleri",
	"Tarımsal Yapılar",
	"Tamamlanan Projeler",
	"Makine Parkı",
}
