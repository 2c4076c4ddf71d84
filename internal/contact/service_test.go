// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package contact_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/contact"
	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
)

// fakeRepository is an in-memory contact card store.
type fakeRepository struct {
	cards map[string]*contact.ContactCard
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{cards: map[string]*contact.ContactCard{}}
}

func (repo *fakeRepository) ListCards(_ context.Context) ([]*contact.ContactCard, error) {
	result := make([]*contact.ContactCard, 0, len(repo.cards))
	for _, card := range repo.cards {
		result = append(result, card)
	}
	return result, nil
}

func (repo *fakeRepository) GetCardByID(_ context.Context, id string) (*contact.ContactCard, error) {
	card, ok := repo.cards[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return card, nil
}

func (repo *fakeRepository) Create(_ context.Context, card *contact.ContactCard) error {
	repo.cards[card.ID] = card
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, card *contact.ContactCard) error {
	if _, ok := repo.cards[card.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.cards[card.ID] = card
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.cards[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.cards, id)
	return nil
}

func newService(repo contact.Repository) *contact.Service {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	deadCache := cache.New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), logger)
	return contact.NewService(repo, deadCache, logger)
}

/*
TestCreateCard_ContactItem verifies that a contact_item payload is
validated against its shape and unknown fields are stripped on the way in.
*/
func TestCreateCard_ContactItem(t *testing.T) {
	service := newService(newFakeRepository())

	card, err := service.CreateCard(context.Background(), contact.SaveInput{
		CardType: contact.TypeContactItem,
		Title:    "Telefon",
		Payload:  json.RawMessage(`{"icon": "phone", "color": "steel-600", "details": ["+90 262 000 00 00"], "unknown_field": true}`),
	})
	require.NoError(t, err)

	var payload contact.ContactItemPayload
	require.NoError(t, json.Unmarshal(card.Payload, &payload))
	assert.Equal(t, "phone", payload.Icon)
	require.Len(t, payload.Details, 1)

	// Unknown fields do not survive into storage.
	assert.NotContains(t, string(card.Payload), "unknown_field")
}

/*
TestCreateCard_PayloadValidation verifies the shape-specific rules.
*/
func TestCreateCard_PayloadValidation(t *testing.T) {
	service := newService(newFakeRepository())

	testCases := []struct {
		name  string
		input contact.SaveInput
	}{
		{
			"unknown type",
			contact.SaveInput{CardType: "banner", Title: "X", Payload: json.RawMessage(`{}`)},
		},
		{
			"unknown icon",
			contact.SaveInput{CardType: contact.TypeContactItem, Title: "X",
				Payload: json.RawMessage(`{"icon": "rocket", "details": ["a"]}`)},
		},
		{
			"contact item without details",
			contact.SaveInput{CardType: contact.TypeContactItem, Title: "X",
				Payload: json.RawMessage(`{"icon": "phone", "details": []}`)},
		},
		{
			"location without address",
			contact.SaveInput{CardType: contact.TypeLocation, Title: "Merkez",
				Payload: json.RawMessage(`{"subtitle": "Fabrika"}`)},
		},
		{
			"malformed payload",
			contact.SaveInput{CardType: contact.TypeLocation, Title: "Merkez",
				Payload: json.RawMessage(`{"address": `)},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.CreateCard(context.Background(), testCase.input)
			assert.Error(t, err)
		})
	}
}

/*
TestPublicCards_GroupsByType verifies the public listing splits cards into
contact items and locations.
*/
func TestPublicCards_GroupsByType(t *testing.T) {
	service := newService(newFakeRepository())

	_, err := service.CreateCard(context.Background(), contact.SaveInput{
		CardType: contact.TypeContactItem,
		Title:    "E-posta",
		Payload:  json.RawMessage(`{"icon": "email", "details": ["info@demirhancelik.com"]}`),
	})
	require.NoError(t, err)

	_, err = service.CreateCard(context.Background(), contact.SaveInput{
		CardType: contact.TypeLocation,
		Title:    "Fabrika",
		Payload:  json.RawMessage(`{"subtitle": "Üretim Tesisi", "address": "Gebze OSB, Kocaeli"}`),
	})
	require.NoError(t, err)

	grouped, err := service.PublicCards(context.Background())
	require.NoError(t, err)
	assert.Len(t, grouped.ContactItems, 1)
	assert.Len(t, grouped.Locations, 1)
	assert.Equal(t, "Fabrika", grouped.Locations[0].Title)
}
