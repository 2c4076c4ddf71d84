// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package gallery

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/demirhancelik/corporate-api/internal/platform/database/schema"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Categories

func (repository *PostgresRepository) ListCategories(ctx context.Context, activeOnly bool) ([]*GalleryCategory, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE ($1 = false OR %s = true)
		ORDER BY %s ASC;
	`,
		schema.SiteGalleryCategory.ID,
		schema.SiteGalleryCategory.Name,
		schema.SiteGalleryCategory.Slug,
		schema.SiteGalleryCategory.SortOrder,
		schema.SiteGalleryCategory.IsActive,
		schema.SiteGalleryCategory.CreatedAt,
		schema.SiteGalleryCategory.Table,
		schema.SiteGalleryCategory.IsActive,
		schema.SiteGalleryCategory.SortOrder,
	)

	rows, err := repository.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, dberr.Wrap(err, "list_gallery_categories")
	}
	defer rows.Close()

	var categories []*GalleryCategory
	for rows.Next() {
		category := &GalleryCategory{}
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.SortOrder,
			&category.IsActive,
			&category.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_gallery_category")
		}
		categories = append(categories, category)
	}

	if err := repository.attachImages(ctx, categories, activeOnly); err != nil {
		return nil, err
	}

	return categories, nil
}

func (repository *PostgresRepository) GetCategoryByID(ctx context.Context, id string) (*GalleryCategory, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.SiteGalleryCategory.ID,
		schema.SiteGalleryCategory.Name,
		schema.SiteGalleryCategory.Slug,
		schema.SiteGalleryCategory.SortOrder,
		schema.SiteGalleryCategory.IsActive,
		schema.SiteGalleryCategory.CreatedAt,
		schema.SiteGalleryCategory.Table,
		schema.SiteGalleryCategory.ID,
	)

	category := &GalleryCategory{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.SortOrder,
		&category.IsActive,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_gallery_category")
	}

	if err := repository.attachImages(ctx, []*GalleryCategory{category}, false); err != nil {
		return nil, err
	}

	return category, nil
}

// CreateCategory inserts a category row. A unique-slug violation is
// returned raw so callers can distinguish it from other failures.
func (repository *PostgresRepository) CreateCategory(ctx context.Context, category *GalleryCategory) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6);
	`,
		schema.SiteGalleryCategory.Table,
		schema.SiteGalleryCategory.ID,
		schema.SiteGalleryCategory.Name,
		schema.SiteGalleryCategory.Slug,
		schema.SiteGalleryCategory.SortOrder,
		schema.SiteGalleryCategory.IsActive,
		schema.SiteGalleryCategory.CreatedAt,
	)

	if _, err := repository.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.SortOrder,
		category.IsActive,
		category.CreatedAt,
	); err != nil {
		if dberr.IsUnique(err) {
			return err
		}
		return dberr.Wrap(err, "insert_gallery_category")
	}

	return nil
}

func (repository *PostgresRepository) UpdateCategory(ctx context.Context, category *GalleryCategory) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1;
	`,
		schema.SiteGalleryCategory.Table,
		schema.SiteGalleryCategory.Name,
		schema.SiteGalleryCategory.Slug,
		schema.SiteGalleryCategory.SortOrder,
		schema.SiteGalleryCategory.IsActive,
		schema.SiteGalleryCategory.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.SortOrder,
		category.IsActive,
	)
	if err != nil {
		return dberr.Wrap(err, "update_gallery_category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) DeleteCategory(ctx context.Context, id string) error {
	// Image rows cascade via the FK constraint.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.SiteGalleryCategory.Table,
		schema.SiteGalleryCategory.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// # Images

func (repository *PostgresRepository) ListImages(ctx context.Context, categoryID string, activeOnly bool) ([]*GalleryImage, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE ($1 = '' OR %s = $1)
		  AND ($2 = false OR %s = true)
		ORDER BY %s ASC;
	`,
		schema.SiteGalleryImage.ID,
		schema.SiteGalleryImage.CategoryID,
		schema.SiteGalleryImage.URL,
		schema.SiteGalleryImage.AltText,
		schema.SiteGalleryImage.SortOrder,
		schema.SiteGalleryImage.IsActive,
		schema.SiteGalleryImage.FileSizeBytes,
		schema.SiteGalleryImage.CreatedAt,
		schema.SiteGalleryImage.Table,
		schema.SiteGalleryImage.CategoryID,
		schema.SiteGalleryImage.IsActive,
		schema.SiteGalleryImage.SortOrder,
	)

	rows, err := repository.db.Query(ctx, query, categoryID, activeOnly)
	if err != nil {
		return nil, dberr.Wrap(err, "list_gallery_images")
	}
	defer rows.Close()

	var images []*GalleryImage
	for rows.Next() {
		image := &GalleryImage{}
		if err := rows.Scan(
			&image.ID,
			&image.CategoryID,
			&image.URL,
			&image.AltText,
			&image.SortOrder,
			&image.IsActive,
			&image.FileSizeBytes,
			&image.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_gallery_image")
		}
		images = append(images, image)
	}

	return images, nil
}

func (repository *PostgresRepository) GetImageByID(ctx context.Context, id string) (*GalleryImage, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.SiteGalleryImage.ID,
		schema.SiteGalleryImage.CategoryID,
		schema.SiteGalleryImage.URL,
		schema.SiteGalleryImage.AltText,
		schema.SiteGalleryImage.SortOrder,
		schema.SiteGalleryImage.IsActive,
		schema.SiteGalleryImage.FileSizeBytes,
		schema.SiteGalleryImage.CreatedAt,
		schema.SiteGalleryImage.Table,
		schema.SiteGalleryImage.ID,
	)

	image := &GalleryImage{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.CategoryID,
		&image.URL,
		&image.AltText,
		&image.SortOrder,
		&image.IsActive,
		&image.FileSizeBytes,
		&image.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_gallery_image")
	}

	return image, nil
}

func (repository *PostgresRepository) CreateImage(ctx context.Context, image *GalleryImage) error {
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		schema.SiteGalleryImage.Table,
		schema.SiteGalleryImage.ID,
		schema.SiteGalleryImage.CategoryID,
		schema.SiteGalleryImage.URL,
		schema.SiteGalleryImage.AltText,
		schema.SiteGalleryImage.SortOrder,
		schema.SiteGalleryImage.IsActive,
		schema.SiteGalleryImage.FileSizeBytes,
		schema.SiteGalleryImage.CreatedAt,
	)

	if _, err := repository.db.Exec(ctx, query,
		image.ID,
		image.CategoryID,
		image.URL,
		image.AltText,
		image.SortOrder,
		image.IsActive,
		image.FileSizeBytes,
		image.CreatedAt,
	); err != nil {
		return dberr.Wrap(err, "insert_gallery_image")
	}

	return nil
}

func (repository *PostgresRepository) UpdateImage(ctx context.Context, image *GalleryImage) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1;
	`,
		schema.SiteGalleryImage.Table,
		schema.SiteGalleryImage.CategoryID,
		schema.SiteGalleryImage.URL,
		schema.SiteGalleryImage.AltText,
		schema.SiteGalleryImage.SortOrder,
		schema.SiteGalleryImage.IsActive,
		schema.SiteGalleryImage.FileSizeBytes,
		schema.SiteGalleryImage.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		image.ID,
		image.CategoryID,
		image.URL,
		image.AltText,
		image.SortOrder,
		image.IsActive,
		image.FileSizeBytes,
	)
	if err != nil {
		return dberr.Wrap(err, "update_gallery_image")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) DeleteImage(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.SiteGalleryImage.Table,
		schema.SiteGalleryImage.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_image")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// attachImages loads image rows for the given categories in one query.
func (repository *PostgresRepository) attachImages(ctx context.Context, categories []*GalleryCategory, activeOnly bool) error {
	if len(categories) == 0 {
		return nil
	}

	ids := make([]string, 0, len(categories))
	byID := make(map[string]*GalleryCategory, len(categories))
	for _, category := range categories {
		ids = append(ids, category.ID)
		byID[category.ID] = category
		category.Images = []GalleryImage{}
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		  AND ($2 = false OR %s = true)
		ORDER BY %s ASC;
	`,
		schema.SiteGalleryImage.ID,
		schema.SiteGalleryImage.CategoryID,
		schema.SiteGalleryImage.URL,
		schema.SiteGalleryImage.AltText,
		schema.SiteGalleryImage.SortOrder,
		schema.SiteGalleryImage.IsActive,
		schema.SiteGalleryImage.FileSizeBytes,
		schema.SiteGalleryImage.CreatedAt,
		schema.SiteGalleryImage.Table,
		schema.SiteGalleryImage.CategoryID,
		schema.SiteGalleryImage.IsActive,
		schema.SiteGalleryImage.SortOrder,
	)

	rows, err := repository.db.Query(ctx, query, ids, activeOnly)
	if err != nil {
		return dberr.Wrap(err, "list_gallery_images")
	}
	defer rows.Close()

	for rows.Next() {
		var image GalleryImage
		if err := rows.Scan(
			&image.ID,
			&image.CategoryID,
			&image.URL,
			&image.AltText,
			&image.SortOrder,
			&image.IsActive,
			&image.FileSizeBytes,
			&image.CreatedAt,
		); err != nil {
			return dberr.Wrap(err, "scan_gallery_image")
		}
		if category, ok := byID[image.CategoryID]; ok {
			category.Images = append(category.Images, image)
		}
	}

	return nil
}
