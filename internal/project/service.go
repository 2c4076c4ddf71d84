// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package project

import (
	"context"
	"log/slog"
	"time"

	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/validate"
	"github.com/demirhancelik/corporate-api/pkg/uuidv7"
)

// Service implements project use cases.
type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService constructs a project Service.
func NewService(repo Repository, publicCache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: publicCache, logger: logger}
}

// # Inputs

// ImageInput is one photo in a full-replacement project payload.
type ImageInput struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// SaveInput is the complete project payload submitted by the admin form.
type SaveInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Category    Category     `json:"category"`
	StartYear   int          `json:"start_year"`
	EndYear     int          `json:"end_year"`
	Language    string       `json:"language"`
	SortOrder   int          `json:"sort_order"`
	Images      []ImageInput `json:"images"`
}

// # Operations

// ListProjects returns projects for the admin list screen.
func (service *Service) ListProjects(ctx context.Context, language string, category Category) ([]*Project, error) {
	return service.repo.ListProjects(ctx, language, category)
}

// GetProject returns one project with its images.
func (service *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	return service.repo.GetProjectByID(ctx, id)
}

/*
CreateProject validates and persists a new project.

Description: Assigns a server-side id, normalizes the primary-image flag
(at most one image keeps it; the first flagged one wins), and persists the
project with its image set atomically.

Returns:
  - *Project: The created project with its server-assigned id
  - error: Validation failures or storage errors
*/
func (service *Service) CreateProject(ctx context.Context, input SaveInput) (*Project, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	project := service.buildProject(uuidv7.New(), input)
	if err := service.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	service.invalidatePublic(ctx)
	return project, nil
}

// UpdateProject replaces an existing project and its image set (last write wins).
func (service *Service) UpdateProject(ctx context.Context, id string, input SaveInput) (*Project, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	project := service.buildProject(id, input)
	if err := service.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	service.invalidatePublic(ctx)
	return project, nil
}

// DeleteProject removes a project and its images.
func (service *Service) DeleteProject(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.invalidatePublic(ctx)
	return nil
}

// PublicProjects returns the cached public portfolio for a language.
func (service *Service) PublicProjects(ctx context.Context, language string, category Category) ([]*Project, error) {
	// Category-filtered requests bypass the cache; the unfiltered listing is
	// the hot path the site renders on every visit.
	if category != "" {
		return service.repo.ListProjects(ctx, language, category)
	}

	cacheKey := constants.RedisPrefixPublicList + "projects:" + language

	var cached []*Project
	if service.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	projects, err := service.repo.ListProjects(ctx, language, "")
	if err != nil {
		return nil, err
	}

	service.cache.Set(ctx, cacheKey, projects, constants.PublicCacheTTL)
	return projects, nil
}

// # Internal Helpers

func (service *Service) validateInput(input SaveInput) error {
	categories := make([]string, 0, 6)
	for _, category := range Categories() {
		categories = append(categories, string(category))
	}

	currentYear := time.Now().Year()

	validator := &validate.Validator{}
	return validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		OneOf("category", string(input.Category), categories...).
		OneOf("language", input.Language, constants.LanguageTurkish, constants.LanguageEnglish).
		Custom("start_year", input.StartYear != 0 && (input.StartYear < 1970 || input.StartYear > currentYear+5), "Start year is out of range").
		Custom("end_year", input.EndYear != 0 && input.EndYear < input.StartYear, "End year cannot precede start year").
		Err()
}

// buildProject maps the input to an entity and enforces the single-primary
// image invariant: the first flagged image keeps the flag, the rest lose it.
func (service *Service) buildProject(id string, input SaveInput) *Project {
	project := &Project{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Category:    input.Category,
		StartYear:   input.StartYear,
		EndYear:     input.EndYear,
		Language:    input.Language,
		SortOrder:   input.SortOrder,
		Images:      make([]ProjectImage, 0, len(input.Images)),
	}

	primarySeen := false
	for i, image := range input.Images {
		isPrimary := image.IsPrimary && !primarySeen
		if image.IsPrimary {
			primarySeen = true
		}

		sortOrder := image.SortOrder
		if sortOrder == 0 {
			sortOrder = i
		}

		project.Images = append(project.Images, ProjectImage{
			ID:        uuidv7.New(),
			ProjectID: id,
			URL:       image.URL,
			AltText:   image.AltText,
			IsPrimary: isPrimary,
			SortOrder: sortOrder,
		})
	}

	return project
}

func (service *Service) invalidatePublic(ctx context.Context) {
	service.cache.Invalidate(ctx,
		constants.RedisPrefixPublicList+"projects:"+constants.LanguageTurkish,
		constants.RedisPrefixPublicList+"projects:"+constants.LanguageEnglish,
	)
}
