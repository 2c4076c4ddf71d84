// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package gallery_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/gallery"
	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
)

// fakeRepository is an in-memory gallery store keyed by category slug.
type fakeRepository struct {
	categories map[string]*gallery.GalleryCategory
	images     map[string]*gallery.GalleryImage

	// failSlugs simulates a storage failure for specific category slugs.
	failSlugs map[string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		categories: map[string]*gallery.GalleryCategory{},
		images:     map[string]*gallery.GalleryImage{},
		failSlugs:  map[string]bool{},
	}
}

func (repo *fakeRepository) ListCategories(_ context.Context, _ bool) ([]*gallery.GalleryCategory, error) {
	result := make([]*gallery.GalleryCategory, 0, len(repo.categories))
	for _, category := range repo.categories {
		result = append(result, category)
	}
	return result, nil
}

func (repo *fakeRepository) GetCategoryByID(_ context.Context, id string) (*gallery.GalleryCategory, error) {
	for _, category := range repo.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) CreateCategory(_ context.Context, category *gallery.GalleryCategory) error {
	if repo.failSlugs[category.Slug] {
		return errors.New("connection reset")
	}
	if _, exists := repo.categories[category.Slug]; exists {
		return &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	}
	repo.categories[category.Slug] = category
	return nil
}

func (repo *fakeRepository) UpdateCategory(_ context.Context, category *gallery.GalleryCategory) error {
	repo.categories[category.Slug] = category
	return nil
}

func (repo *fakeRepository) DeleteCategory(_ context.Context, id string) error {
	for slug, category := range repo.categories {
		if category.ID == id {
			delete(repo.categories, slug)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (repo *fakeRepository) ListImages(_ context.Context, _ string, _ bool) ([]*gallery.GalleryImage, error) {
	result := make([]*gallery.GalleryImage, 0, len(repo.images))
	for _, image := range repo.images {
		result = append(result, image)
	}
	return result, nil
}

func (repo *fakeRepository) GetImageByID(_ context.Context, id string) (*gallery.GalleryImage, error) {
	image, ok := repo.images[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return image, nil
}

func (repo *fakeRepository) CreateImage(_ context.Context, image *gallery.GalleryImage) error {
	repo.images[image.ID] = image
	return nil
}

func (repo *fakeRepository) UpdateImage(_ context.Context, image *gallery.GalleryImage) error {
	repo.images[image.ID] = image
	return nil
}

func (repo *fakeRepository) DeleteImage(_ context.Context, id string) error {
	delete(repo.images, id)
	return nil
}

func newService(repo gallery.Repository) *gallery.Service {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	// An unreachable Redis target: the cache fails open, which is exactly
	// the production behavior when Redis is down.
	deadCache := cache.New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), logger)
	return gallery.NewService(repo, deadCache, logger)
}

/*
TestLoadDefaultCategories_FreshDatabase verifies that seeding an empty
store creates every default category.
*/
func TestLoadDefaultCategories_FreshDatabase(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	results := service.LoadDefaultCategories(context.Background())

	require.Len(t, results, len(gallery.DefaultCategoryNames))
	for _, result := range results {
		assert.Equal(t, gallery.SeedCreated, result.Outcome, "category %s", result.Name)
		assert.NotEmpty(t, result.Slug)
	}
	assert.Len(t, repo.categories, len(gallery.DefaultCategoryNames))
}

/*
TestLoadDefaultCategories_Rerun verifies that re-running the seed reports
already_exists for every category and creates nothing new.
*/
func TestLoadDefaultCategories_Rerun(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	service.LoadDefaultCategories(context.Background())
	results := service.LoadDefaultCategories(context.Background())

	require.Len(t, results, len(gallery.DefaultCategoryNames))
	for _, result := range results {
		assert.Equal(t, gallery.SeedAlreadyExists, result.Outcome, "category %s", result.Name)
	}
	assert.Len(t, repo.categories, len(gallery.DefaultCategoryNames))
}

/*
TestLoadDefaultCategories_PartialFailure verifies that one failing insert
neither aborts the batch nor masks the other outcomes.
*/
func TestLoadDefaultCategories_PartialFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.failSlugs["fabrika"] = true
	service := newService(repo)

	results := service.LoadDefaultCategories(context.Background())

	require.Len(t, results, len(gallery.DefaultCategoryNames))

	var failed, created int
	for _, result := range results {
		switch result.Outcome {
		case gallery.SeedFailed:
			failed++
			assert.NotEmpty(t, result.Error)
		case gallery.SeedCreated:
			created++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, len(gallery.DefaultCategoryNames)-1, created)
}

/*
TestCreateImage_MissingCategory verifies that an image cannot be attached
to a category that does not exist.
*/
func TestCreateImage_MissingCategory(t *testing.T) {
	service := newService(newFakeRepository())

	_, err := service.CreateImage(context.Background(), gallery.ImageInput{
		CategoryID: "0195fb1e-0000-7000-8000-000000000000",
		URL:        "https://cdn.demirhancelik.com/gallery/test.jpg",
	})
	assert.Error(t, err)
}
