// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package gallery

import (
	"context"
	"log/slog"

	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
	"github.com/demirhancelik/corporate-api/internal/platform/validate"
	"github.com/demirhancelik/corporate-api/pkg/slug"
	"github.com/demirhancelik/corporate-api/pkg/uuidv7"
)

const publicCacheKey = constants.RedisPrefixPublicList + "gallery"

// Service implements gallery use cases.
type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService constructs a gallery Service.
func NewService(repo Repository, publicCache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: publicCache, logger: logger}
}

// # Inputs

// CategoryInput is the complete category payload submitted by the admin form.
type CategoryInput struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// ImageInput is the complete image payload submitted by the admin form.
type ImageInput struct {
	CategoryID    string `json:"category_id"`
	URL           string `json:"url"`
	AltText       string `json:"alt_text"`
	SortOrder     int    `json:"sort_order"`
	IsActive      bool   `json:"is_active"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// # Categories

// ListCategories returns all categories with their images for the admin
// screen.
func (service *Service) ListCategories(ctx context.Context) ([]*GalleryCategory, error) {
	return service.repo.ListCategories(ctx, false)
}

// CreateCategory validates and persists a new category. The slug is derived
// from the name.
func (service *Service) CreateCategory(ctx context.Context, input CategoryInput) (*GalleryCategory, error) {
	if err := service.validateCategory(input); err != nil {
		return nil, err
	}

	category := &GalleryCategory{
		ID:        uuidv7.New(),
		Name:      input.Name,
		Slug:      slug.From(input.Name),
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	}
	if err := service.repo.CreateCategory(ctx, category); err != nil {
		if dberr.IsUnique(err) {
			return nil, dberr.Wrap(err, "insert_gallery_category")
		}
		return nil, err
	}

	service.cache.Invalidate(ctx, publicCacheKey)
	return category, nil
}

// UpdateCategory replaces a category. Renaming regenerates the slug.
func (service *Service) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*GalleryCategory, error) {
	if err := service.validateCategory(input); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category := &GalleryCategory{
		ID:        id,
		Name:      input.Name,
		Slug:      slug.From(input.Name),
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
		CreatedAt: existing.CreatedAt,
	}
	if err := service.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	service.cache.Invalidate(ctx, publicCacheKey)
	return category, nil
}

// DeleteCategory removes a category and, through the store, its images.
func (service *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := service.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	service.cache.Invalidate(ctx, publicCacheKey)
	return nil
}

/*
LoadDefaultCategories seeds the standard category set.

Description: Attempts to insert every default category and reports a
per-category outcome. A category whose slug already exists reports
already_exists; any other storage failure reports failed with the error
message. Neither outcome stops the remaining inserts, so the operation can
be re-run safely at any time.

Returns:
  - []SeedResult: One outcome per default category, in display order
*/
func (service *Service) LoadDefaultCategories(ctx context.Context) []SeedResult {
	results := make([]SeedResult, 0, len(DefaultCategoryNames))

	for position, name := range DefaultCategoryNames {
		category := &GalleryCategory{
			ID:        uuidv7.New(),
			Name:      name,
			Slug:      slug.From(name),
			SortOrder: position + 1,
			IsActive:  true,
		}

		result := SeedResult{Name: name, Slug: category.Slug, Outcome: SeedCreated}
		if err := service.repo.CreateCategory(ctx, category); err != nil {
			if dberr.IsUnique(err) {
				result.Outcome = SeedAlreadyExists
			} else {
				result.Outcome = SeedFailed
				result.Error = err.Error()
				service.logger.Error("gallery_seed_failed",
					slog.String("category", name), slog.Any("error", err))
			}
		}
		results = append(results, result)
	}

	service.cache.Invalidate(ctx, publicCacheKey)
	return results
}

// # Images

// ListImages returns images, optionally scoped to one category.
func (service *Service) ListImages(ctx context.Context, categoryID string) ([]*GalleryImage, error) {
	return service.repo.ListImages(ctx, categoryID, false)
}

// CreateImage validates and persists a new image in an existing category.
func (service *Service) CreateImage(ctx context.Context, input ImageInput) (*GalleryImage, error) {
	if err := service.validateImage(input); err != nil {
		return nil, err
	}

	// The category must exist; the FK would reject the insert anyway but
	// this yields a proper not-found instead of a conflict.
	if _, err := service.repo.GetCategoryByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	image := buildImage(uuidv7.New(), input)
	if err := service.repo.CreateImage(ctx, image); err != nil {
		return nil, err
	}

	service.cache.Invalidate(ctx, publicCacheKey)
	return image, nil
}

// UpdateImage replaces an image record.
func (service *Service) UpdateImage(ctx context.Context, id string, input ImageInput) (*GalleryImage, error) {
	if err := service.validateImage(input); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetImageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image := buildImage(id, input)
	image.CreatedAt = existing.CreatedAt
	if err := service.repo.UpdateImage(ctx, image); err != nil {
		return nil, err
	}

	service.cache.Invalidate(ctx, publicCacheKey)
	return image, nil
}

// DeleteImage removes an image record.
func (service *Service) DeleteImage(ctx context.Context, id string) error {
	if err := service.repo.DeleteImage(ctx, id); err != nil {
		return err
	}
	service.cache.Invalidate(ctx, publicCacheKey)
	return nil
}

// PublicGallery returns active categories with their active images, served
// from cache when possible.
func (service *Service) PublicGallery(ctx context.Context) ([]*GalleryCategory, error) {
	var cached []*GalleryCategory
	if service.cache.Get(ctx, publicCacheKey, &cached) {
		return cached, nil
	}

	categories, err := service.repo.ListCategories(ctx, true)
	if err != nil {
		return nil, err
	}

	service.cache.Set(ctx, publicCacheKey, categories, constants.PublicCacheTTL)
	return categories, nil
}

func (service *Service) validateCategory(input CategoryInput) error {
	validator := &validate.Validator{}
	return validator.
		Required("name", input.Name).
		MaxLen("name", input.Name, 100).
		Err()
}

func (service *Service) validateImage(input ImageInput) error {
	validator := &validate.Validator{}
	return validator.
		Required("category_id", input.CategoryID).
		UUID("category_id", input.CategoryID).
		Required("url", input.URL).
		Custom("file_size_bytes", input.FileSizeBytes < 0, "File size cannot be negative").
		Err()
}

func buildImage(id string, input ImageInput) *GalleryImage {
	return &GalleryImage{
		ID:            id,
		CategoryID:    input.CategoryID,
		URL:           input.URL,
		AltText:       input.AltText,
		SortOrder:     input.SortOrder,
		IsActive:      input.IsActive,
		FileSizeBytes: input.FileSizeBytes,
	}
}
