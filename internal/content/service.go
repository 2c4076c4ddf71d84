// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package content

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/demirhancelik/corporate-api/internal/platform/apperr"
	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/validate"
	"github.com/demirhancelik/corporate-api/pkg/uuidv7"
)

// Service implements content slot use cases for both the admin panel and
// the public site.
type Service struct {
	repo   Repository
	loader *Loader
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService constructs a content Service.
func NewService(repo Repository, publicCache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		loader: NewLoader(repo, logger),
		cache:  publicCache,
		logger: logger,
	}
}

// # Admin CRUD

// SaveInput is the full-replacement payload for creating or updating a slot.
//
// Forms always submit the complete object; partial patches are not supported
// and concurrent edits resolve as last-write-wins.
type SaveInput struct {
	ID       string          `json:"id"`
	Kind     SlotKind        `json:"kind"`
	Key      string          `json:"key"`
	Language string          `json:"language"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Document json.RawMessage `json:"document"`
}

// ListSlots returns slots filtered by kind and language (empty = any).
func (service *Service) ListSlots(ctx context.Context, kind SlotKind, language string) ([]*ContentSlot, error) {
	return service.repo.ListSlots(ctx, kind, language)
}

// GetSlot returns a single slot by id.
func (service *Service) GetSlot(ctx context.Context, id string) (*ContentSlot, error) {
	return service.repo.GetSlotByID(ctx, id)
}

/*
SaveSlot validates and persists a slot as a full replacement.

Description: Serves both "create" and "edit" admin flows. A missing ID means
a new slot; the (kind, key, language) upsert makes re-submitting an existing
slot an overwrite rather than a duplicate.

Returns:
  - *ContentSlot: The persisted slot
  - error: Validation failures or storage errors
*/
func (service *Service) SaveSlot(ctx context.Context, input SaveInput) (*ContentSlot, error) {
	validator := &validate.Validator{}
	validator.
		Required("key", input.Key).
		OneOf("kind", string(input.Kind), string(KindPage), string(KindLayout)).
		OneOf("language", input.Language, constants.LanguageTurkish, constants.LanguageEnglish)

	if input.Kind == KindLayout {
		validator.Custom("document", len(input.Document) == 0, "Layout slots require a document payload")
		validator.Custom("document", len(input.Document) > 0 && !json.Valid(input.Document), "Document must be valid JSON")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	slot := &ContentSlot{
		ID:       input.ID,
		Kind:     input.Kind,
		Key:      input.Key,
		Language: input.Language,
		Title:    input.Title,
		Body:     input.Body,
		Document: input.Document,
	}
	if slot.ID == "" {
		slot.ID = uuidv7.New()
	}

	if err := service.repo.Upsert(ctx, slot); err != nil {
		return nil, err
	}

	service.invalidate(ctx, slot.Key, slot.Language)
	return slot, nil
}

// DeleteSlot removes a slot. Public reads of its key fall back to defaults.
func (service *Service) DeleteSlot(ctx context.Context, id string) error {
	slot, err := service.repo.GetSlotByID(ctx, id)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.invalidate(ctx, slot.Key, slot.Language)
	return nil
}

// # Public Reads (defaulted)

/*
PublicDocument resolves a layout document for the public site.

Description: The defaulted read path with a Redis cache in front. Unknown
keys are a NotFound — only keys with registered defaults are public.

Returns:
  - interface{}: One of HomeDocument, AboutDocument, FooterDocument
  - error: apperr.NotFound for unregistered keys
*/
func (service *Service) PublicDocument(ctx context.Context, key, language string) (interface{}, error) {
	cacheKey := constants.RedisPrefixPublicContent + key + ":" + language

	switch key {
	case KeyHome:
		var cached HomeDocument
		if service.cache.Get(ctx, cacheKey, &cached) {
			return cached, nil
		}
		document := Load(ctx, service.loader, KeyHome, language, DefaultHome(language))
		service.cache.Set(ctx, cacheKey, document, constants.PublicCacheTTL)
		return document, nil

	case KeyAbout:
		var cached AboutDocument
		if service.cache.Get(ctx, cacheKey, &cached) {
			return cached, nil
		}
		document := Load(ctx, service.loader, KeyAbout, language, DefaultAbout(language))
		service.cache.Set(ctx, cacheKey, document, constants.PublicCacheTTL)
		return document, nil

	case KeyFooter:
		var cached FooterDocument
		if service.cache.Get(ctx, cacheKey, &cached) {
			return cached, nil
		}
		document := Load(ctx, service.loader, KeyFooter, language, DefaultFooter(language))
		service.cache.Set(ctx, cacheKey, document, constants.PublicCacheTTL)
		return document, nil
	}

	return nil, apperr.NotFound("Content document")
}

// PublicPages returns all plain-text page slots for a language.
func (service *Service) PublicPages(ctx context.Context, language string) ([]*ContentSlot, error) {
	return service.repo.ListSlots(ctx, KindPage, language)
}

// invalidate drops the cached public document for a (key, language) pair.
func (service *Service) invalidate(ctx context.Context, key, language string) {
	service.cache.Invalidate(ctx, constants.RedisPrefixPublicContent+key+":"+language)
}
