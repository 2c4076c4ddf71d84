// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package contact

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/validate"
	"github.com/demirhancelik/corporate-api/pkg/uuidv7"
)

const publicCacheKey = constants.RedisPrefixPublicList + "contact"

// Service implements contact card use cases.
type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService constructs a contact Service.
func NewService(repo Repository, publicCache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: publicCache, logger: logger}
}

// SaveInput is the complete card payload submitted by the admin form. The
// payload is validated against the shape the type names before it is stored.
type SaveInput struct {
	CardType  CardType        `json:"type"`
	Title     string          `json:"title"`
	Payload   json.RawMessage `json:"payload"`
	SortOrder int             `json:"sort_order"`
}

// ListCards returns all cards for the admin screen.
func (service *Service) ListCards(ctx context.Context) ([]*ContactCard, error) {
	return service.repo.ListCards(ctx)
}

// GetCard returns one card.
func (service *Service) GetCard(ctx context.Context, id string) (*ContactCard, error) {
	return service.repo.GetCardByID(ctx, id)
}

// CreateCard validates and persists a new card.
func (service *Service) CreateCard(ctx context.Context, input SaveInput) (*ContactCard, error) {
	payload, err := service.validateInput(input)
	if err != nil {
		return nil, err
	}

	card := &ContactCard{
		ID:        uuidv7.New(),
		CardType:  input.CardType,
		Title:     input.Title,
		Payload:   payload,
		SortOrder: input.SortOrder,
	}
	if err := service.repo.Create(ctx, card); err != nil {
		return nil, err
	}

	service.cache.Invalidate(ctx, publicCacheKey)
	return card, nil
}

// UpdateCard replaces a card.
func (service *Service) UpdateCard(ctx context.Context, id string, input SaveInput) (*ContactCard, error) {
	payload, err := service.validateInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := service.repo.GetCardByID(ctx, id)
	if err != nil {
		return nil, err
	}

	card := &ContactCard{
		ID:        id,
		CardType:  input.CardType,
		Title:     input.Title,
		Payload:   payload,
		SortOrder: input.SortOrder,
		CreatedAt: existing.CreatedAt,
	}
	if err := service.repo.Update(ctx, card); err != nil {
		return nil, err
	}

	service.cache.Invalidate(ctx, publicCacheKey)
	return card, nil
}

// DeleteCard removes a card.
func (service *Service) DeleteCard(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}
	service.cache.Invalidate(ctx, publicCacheKey)
	return nil
}

// PublicCards returns all cards grouped by shape for the public contact
// page, served from cache when possible.
func (service *Service) PublicCards(ctx context.Context) (*GroupedCards, error) {
	cached := &GroupedCards{}
	if service.cache.Get(ctx, publicCacheKey, cached) {
		return cached, nil
	}

	cards, err := service.repo.ListCards(ctx)
	if err != nil {
		return nil, err
	}

	grouped := &GroupedCards{
		ContactItems: []*ContactCard{},
		Locations:    []*ContactCard{},
	}
	for _, card := range cards {
		switch card.CardType {
		case TypeContactItem:
			grouped.ContactItems = append(grouped.ContactItems, card)
		case TypeLocation:
			grouped.Locations = append(grouped.Locations, card)
		}
	}

	service.cache.Set(ctx, publicCacheKey, grouped, constants.PublicCacheTTL)
	return grouped, nil
}

// validateInput checks the shared fields and decodes the payload against
// the shape named by the type. The re-marshalled payload is returned so
// unknown fields do not survive into storage.
func (service *Service) validateInput(input SaveInput) (json.RawMessage, error) {
	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		OneOf("type", string(input.CardType), string(TypeContactItem), string(TypeLocation))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	switch input.CardType {
	case TypeContactItem:
		var payload ContactItemPayload
		if err := json.Unmarshal(input.Payload, &payload); err != nil {
			return nil, validate.ErrInvalidJSON
		}
		validator.
			OneOf("payload.icon", payload.Icon, Icons()...).
			Custom("payload.details", len(payload.Details) == 0, "At least one detail line is required")
		if err := validator.Err(); err != nil {
			return nil, err
		}
		return json.Marshal(payload)

	default:
		var payload LocationPayload
		if err := json.Unmarshal(input.Payload, &payload); err != nil {
			return nil, validate.ErrInvalidJSON
		}
		validator.Custom("payload.address", payload.Address == "", "Locations require an address")
		if err := validator.Err(); err != nil {
			return nil, err
		}
		return json.Marshal(payload)
	}
}
