// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package contact

import "context"

// Repository defines the data access contract for contact cards.
type Repository interface {
	ListCards(ctx context.Context) ([]*ContactCard, error)
	GetCardByID(ctx context.Context, id string) (*ContactCard, error)
	Create(ctx context.Context, card *ContactCard) error
	Update(ctx context.Context, card *ContactCard) error
	Delete(ctx context.Context, id string) error
}
