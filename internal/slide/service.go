// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package slide

import (
	"context"
	"log/slog"

	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/validate"
	"github.com/demirhancelik/corporate-api/pkg/uuidv7"
)

const publicCacheKey = constants.RedisPrefixPublicList + "slides"

// Service implements carousel use cases.
type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService constructs a slide Service.
func NewService(repo Repository, publicCache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: publicCache, logger: logger}
}

// SaveInput is the complete slide payload submitted by the admin form.
type SaveInput struct {
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	ImageURL  string   `json:"image_url"`
	Buttons   []Button `json:"buttons"`
	IsActive  bool     `json:"is_active"`
	SortOrder int      `json:"sort_order"`
}

// ListSlides returns every slide, active or not, for the admin screen.
func (service *Service) ListSlides(ctx context.Context) ([]*Slide, error) {
	return service.repo.ListSlides(ctx, false)
}

// GetSlide returns one slide.
func (service *Service) GetSlide(ctx context.Context, id string) (*Slide, error) {
	return service.repo.GetSlideByID(ctx, id)
}

// CreateSlide validates and persists a new slide, mirroring the first
// button into the legacy pair.
func (service *Service) CreateSlide(ctx context.Context, input SaveInput) (*Slide, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	slide := buildSlide(uuidv7.New(), input)
	if err := service.repo.Create(ctx, slide); err != nil {
		return nil, err
	}

	service.cache.Invalidate(ctx, publicCacheKey)
	return slide, nil
}

// UpdateSlide replaces a slide, mirroring the first button into the
// legacy pair.
func (service *Service) UpdateSlide(ctx context.Context, id string, input SaveInput) (*Slide, error) {
	if err := service.validateInput(input); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetSlideByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slide := buildSlide(id, input)
	slide.CreatedAt = existing.CreatedAt
	if err := service.repo.Update(ctx, slide); err != nil {
		return nil, err
	}

	service.cache.Invalidate(ctx, publicCacheKey)
	return slide, nil
}

// DeleteSlide removes a slide.
func (service *Service) DeleteSlide(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}
	service.cache.Invalidate(ctx, publicCacheKey)
	return nil
}

// PublicSlides returns the active slides in carousel order, served from
// cache when possible.
func (service *Service) PublicSlides(ctx context.Context) ([]*Slide, error) {
	var cached []*Slide
	if service.cache.Get(ctx, publicCacheKey, &cached) {
		return cached, nil
	}

	slides, err := service.repo.ListSlides(ctx, true)
	if err != nil {
		return nil, err
	}

	service.cache.Set(ctx, publicCacheKey, slides, constants.PublicCacheTTL)
	return slides, nil
}

func (service *Service) validateInput(input SaveInput) error {
	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Required("image_url", input.ImageURL)

	for _, button := range input.Buttons {
		validator.
			Custom("buttons", button.Text == "" || button.URL == "", "Every button needs a text and a url").
			OneOf("buttons", button.Style, StylePrimary, StyleSecondary, StyleOutline)
	}

	return validator.Err()
}

func buildSlide(id string, input SaveInput) *Slide {
	slide := &Slide{
		ID:        id,
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		ImageURL:  input.ImageURL,
		Buttons:   input.Buttons,
		IsActive:  input.IsActive,
		SortOrder: input.SortOrder,
	}
	if slide.Buttons == nil {
		slide.Buttons = []Button{}
	}
	slide.SyncLegacyButton()
	return slide
}
