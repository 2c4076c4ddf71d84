// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package gallery

import "context"

// Repository defines the data access contract for gallery categories
// and images.
//
// CreateCategory surfaces unique-slug violations unwrapped enough for the
// caller to detect them; the seeding operation depends on that to report
// already_exists without aborting the batch.
type Repository interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]*GalleryCategory, error)
	GetCategoryByID(ctx context.Context, id string) (*GalleryCategory, error)
	CreateCategory(ctx context.Context, category *GalleryCategory) error
	UpdateCategory(ctx context.Context, category *GalleryCategory) error
	DeleteCategory(ctx context.Context, id string) error

	ListImages(ctx context.Context, categoryID string, activeOnly bool) ([]*GalleryImage, error)
	GetImageByID(ctx context.Context, id string) (*GalleryImage, error)
	CreateImage(ctx context.Context, image *GalleryImage) error
	UpdateImage(ctx context.Context, image *GalleryImage) error
	DeleteImage(ctx context.Context, id string) error
}
