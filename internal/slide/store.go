// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package slide

import "context"

// Repository defines the data access contract for slides.
//
// Every slide returned by a Repository carries a canonical buttons list;
// rows predating the list are migrated on the way out.
type Repository interface {
	ListSlides(ctx context.Context, activeOnly bool) ([]*Slide, error)
	GetSlideByID(ctx context.Context, id string) (*Slide, error)
	Create(ctx context.Context, slide *Slide) error
	Update(ctx context.Context, slide *Slide) error
	Delete(ctx context.Context, id string) error
}
