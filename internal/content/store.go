// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package content

import "context"

// Repository defines the data access contract for content slots.
type Repository interface {

	// ListSlots returns all slots, optionally filtered by kind and language.
	// Empty filter values mean "any".
	ListSlots(ctx context.Context, kind SlotKind, language string) ([]*ContentSlot, error)

	// GetSlotByID returns a single slot by primary key.
	GetSlotByID(ctx context.Context, id string) (*ContentSlot, error)

	// GetDocument returns the raw JSON document of a layout slot.
	// Implements [DocumentSource] for the defaulted loader.
	GetDocument(ctx context.Context, kind SlotKind, key, language string) ([]byte, error)

	// Upsert writes a slot as a full replacement keyed by (kind, key, language).
	// The (kind, key, language) uniqueness is enforced here, not left to
	// convention. Last write wins. When the write collides with an existing
	// row, implementations write the row's id and creation time back into
	// slot so callers return the persisted identity, not a discarded one.
	Upsert(ctx context.Context, slot *ContentSlot) error

	// Delete removes a slot by primary key.
	Delete(ctx context.Context, id string) error
}
