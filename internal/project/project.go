// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package project manages the completed-works portfolio shown on the site.

A project is a reference work (an industrial plant, a warehouse, a sports
hall) with an ordered set of photos, one of which may be flagged as the
primary cover image.

Architecture:

  - Entities: Project and its owned ProjectImage rows.
  - Service: admin CRUD plus the public listing consumed by the site.
  - Invariant: at most one image per project carries the primary flag,
    enforced on every write rather than trusted to the form.
*/
package project

import "time"

// # Categories

// Category is one of the six fixed portfolio labels.
type Category string

const (
	CategoryIndustrial   Category = "endustriyel"
	CategoryCommercial   Category = "ticari"
	CategoryWarehouse    Category = "depo"
	CategoryEnergy       Category = "enerji"
	CategorySports       Category = "spor"
	CategoryAgricultural Category = "tarimsal"
)

// Categories lists all valid portfolio labels, in display order.
func Categories() []Category {
	return []Category{
		CategoryIndustrial,
		CategoryCommercial,
		CategoryWarehouse,
		CategoryEnergy,
		CategorySports,
		CategoryAgricultural,
	}
}

// # Entities

// ProjectImage is one photo attached to a project.
type ProjectImage struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// Project represents one reference work in the portfolio.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Category    Category `json:"category"`
	StartYear   int      `json:"start_year"`
	EndYear     int      `json:"end_year"`
	Language    string   `json:"language"`
	SortOrder   int      `json:"sort_order"`

	// Images is the ordered photo set, loaded with the project.
	Images []ProjectImage `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrimaryImage returns the cover image, or nil if none is flagged.
func (p *Project) PrimaryImage() *ProjectImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	return nil
}
