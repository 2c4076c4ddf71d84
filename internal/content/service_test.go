// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package content_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/content"
	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
)

// fakeRepository is an in-memory slot store keyed by (kind, key, language),
// honoring the [content.Repository] upsert contract: a colliding write keeps
// the existing row's id and creation time and writes them back into the slot.
type fakeRepository struct {
	slots map[string]*content.ContentSlot
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{slots: map[string]*content.ContentSlot{}}
}

func slotKey(kind content.SlotKind, key, language string) string {
	return string(kind) + "/" + key + "/" + language
}

func (repo *fakeRepository) ListSlots(_ context.Context, kind content.SlotKind, language string) ([]*content.ContentSlot, error) {
	result := make([]*content.ContentSlot, 0, len(repo.slots))
	for _, slot := range repo.slots {
		if kind != "" && slot.Kind != kind {
			continue
		}
		if language != "" && slot.Language != language {
			continue
		}
		result = append(result, slot)
	}
	return result, nil
}

func (repo *fakeRepository) GetSlotByID(_ context.Context, id string) (*content.ContentSlot, error) {
	for _, slot := range repo.slots {
		if slot.ID == id {
			copied := *slot
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) GetDocument(_ context.Context, kind content.SlotKind, key, language string) ([]byte, error) {
	slot, ok := repo.slots[slotKey(kind, key, language)]
	if !ok || len(slot.Document) == 0 {
		return nil, dberr.ErrNotFound
	}
	return slot.Document, nil
}

func (repo *fakeRepository) Upsert(_ context.Context, slot *content.ContentSlot) error {
	storageKey := slotKey(slot.Kind, slot.Key, slot.Language)
	if existing, ok := repo.slots[storageKey]; ok {
		slot.ID = existing.ID
		slot.CreatedAt = existing.CreatedAt
	}

	copied := *slot
	repo.slots[storageKey] = &copied
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	for storageKey, slot := range repo.slots {
		if slot.ID == id {
			delete(repo.slots, storageKey)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func newService(repo content.Repository) *content.Service {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	deadCache := cache.New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), logger)
	return content.NewService(repo, deadCache, logger)
}

/*
TestSaveSlot_CollisionKeepsExistingID verifies that re-submitting a slot
for an occupied (kind, key, language) overwrites the row but reports the
row's original id, not the freshly generated one.
*/
func TestSaveSlot_CollisionKeepsExistingID(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	first, err := service.SaveSlot(context.Background(), content.SaveInput{
		Kind:     content.KindPage,
		Key:      "mission",
		Language: "tr",
		Title:    "Misyonumuz",
		Body:     "Kaliteli çelik yapılar üretmek.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Same (kind, key, language), no id: a create that lands on an upsert.
	second, err := service.SaveSlot(context.Background(), content.SaveInput{
		Kind:     content.KindPage,
		Key:      "mission",
		Language: "tr",
		Title:    "Misyonumuz",
		Body:     "Güncellenen misyon metni.",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	stored, err := repo.GetSlotByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Güncellenen misyon metni.", stored.Body)
}

/*
TestSaveSlot_CollisionKeepsCreatedAt verifies that overwriting an existing
slot preserves its original creation time.
*/
func TestSaveSlot_CollisionKeepsCreatedAt(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	first, err := service.SaveSlot(context.Background(), content.SaveInput{
		Kind:     content.KindPage,
		Key:      "vision",
		Language: "en",
		Title:    "Our Vision",
		Body:     "Original body.",
	})
	require.NoError(t, err)

	original := time.Date(2026, time.February, 1, 8, 0, 0, 0, time.UTC)
	repo.slots[slotKey(content.KindPage, "vision", "en")].CreatedAt = original

	second, err := service.SaveSlot(context.Background(), content.SaveInput{
		Kind:     content.KindPage,
		Key:      "vision",
		Language: "en",
		Title:    "Our Vision",
		Body:     "Replacement body.",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, original, second.CreatedAt)
}

/*
TestSaveSlot_Validation verifies the slot payload rules, the layout
document requirement included.
*/
func TestSaveSlot_Validation(t *testing.T) {
	service := newService(newFakeRepository())

	testCases := []struct {
		name  string
		input content.SaveInput
	}{
		{"missing key", content.SaveInput{Kind: content.KindPage, Language: "tr"}},
		{"unknown kind", content.SaveInput{Kind: "banner", Key: "x", Language: "tr"}},
		{"unknown language", content.SaveInput{Kind: content.KindPage, Key: "x", Language: "fr"}},
		{"layout without document", content.SaveInput{Kind: content.KindLayout, Key: content.KeyHome, Language: "tr"}},
		{"layout with malformed document", content.SaveInput{
			Kind: content.KindLayout, Key: content.KeyHome, Language: "tr",
			Document: []byte(`{"hero_title": `),
		}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.SaveSlot(context.Background(), testCase.input)
			assert.Error(t, err)
		})
	}
}
