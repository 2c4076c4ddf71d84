// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package slide

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/demirhancelik/corporate-api/internal/platform/database/schema"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx. The buttons column
// is jsonb and pgx maps it to the Button slice directly.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListSlides(ctx context.Context, activeOnly bool) ([]*Slide, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE ($1 = false OR %s = true)
		ORDER BY %s ASC;
	`,
		schema.SiteSlide.ID,
		schema.SiteSlide.Title,
		schema.SiteSlide.Subtitle,
		schema.SiteSlide.ImageURL,
		schema.SiteSlide.Buttons,
		schema.SiteSlide.ButtonText,
		schema.SiteSlide.ButtonURL,
		schema.SiteSlide.IsActive,
		schema.SiteSlide.SortOrder,
		schema.SiteSlide.CreatedAt,
		schema.SiteSlide.UpdatedAt,
		schema.SiteSlide.Table,
		schema.SiteSlide.IsActive,
		schema.SiteSlide.SortOrder,
	)

	rows, err := repository.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, dberr.Wrap(err, "list_slides")
	}
	defer rows.Close()

	var slides []*Slide
	for rows.Next() {
		slide := &Slide{}
		if err := rows.Scan(
			&slide.ID,
			&slide.Title,
			&slide.Subtitle,
			&slide.ImageURL,
			&slide.Buttons,
			&slide.ButtonText,
			&slide.ButtonURL,
			&slide.IsActive,
			&slide.SortOrder,
			&slide.CreatedAt,
			&slide.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_slide")
		}
		slide.MigrateLegacyButton()
		slides = append(slides, slide)
	}

	return slides, nil
}

func (repository *PostgresRepository) GetSlideByID(ctx context.Context, id string) (*Slide, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.SiteSlide.ID,
		schema.SiteSlide.Title,
		schema.SiteSlide.Subtitle,
		schema.SiteSlide.ImageURL,
		schema.SiteSlide.Buttons,
		schema.SiteSlide.ButtonText,
		schema.SiteSlide.ButtonURL,
		schema.SiteSlide.IsActive,
		schema.SiteSlide.SortOrder,
		schema.SiteSlide.CreatedAt,
		schema.SiteSlide.UpdatedAt,
		schema.SiteSlide.Table,
		schema.SiteSlide.ID,
	)

	slide := &Slide{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&slide.ID,
		&slide.Title,
		&slide.Subtitle,
		&slide.ImageURL,
		&slide.Buttons,
		&slide.ButtonText,
		&slide.ButtonURL,
		&slide.IsActive,
		&slide.SortOrder,
		&slide.CreatedAt,
		&slide.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_slide")
	}

	slide.MigrateLegacyButton()
	return slide, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, slide *Slide) error {
	now := time.Now()
	if slide.CreatedAt.IsZero() {
		slide.CreatedAt = now
	}
	slide.UpdatedAt = now

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		schema.SiteSlide.Table,
		schema.SiteSlide.ID,
		schema.SiteSlide.Title,
		schema.SiteSlide.Subtitle,
		schema.SiteSlide.ImageURL,
		schema.SiteSlide.Buttons,
		schema.SiteSlide.ButtonText,
		schema.SiteSlide.ButtonURL,
		schema.SiteSlide.IsActive,
		schema.SiteSlide.SortOrder,
		schema.SiteSlide.CreatedAt,
		schema.SiteSlide.UpdatedAt,
	)

	if _, err := repository.db.Exec(ctx, query,
		slide.ID,
		slide.Title,
		slide.Subtitle,
		slide.ImageURL,
		slide.Buttons,
		slide.ButtonText,
		slide.ButtonURL,
		slide.IsActive,
		slide.SortOrder,
		slide.CreatedAt,
		slide.UpdatedAt,
	); err != nil {
		return dberr.Wrap(err, "insert_slide")
	}

	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, slide *Slide) error {
	slide.UpdatedAt = time.Now()

	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8, %s = $9, %s = $10
		WHERE %s = $1;
	`,
		schema.SiteSlide.Table,
		schema.SiteSlide.Title,
		schema.SiteSlide.Subtitle,
		schema.SiteSlide.ImageURL,
		schema.SiteSlide.Buttons,
		schema.SiteSlide.ButtonText,
		schema.SiteSlide.ButtonURL,
		schema.SiteSlide.IsActive,
		schema.SiteSlide.SortOrder,
		schema.SiteSlide.UpdatedAt,
		schema.SiteSlide.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		slide.ID,
		slide.Title,
		slide.Subtitle,
		slide.ImageURL,
		slide.Buttons,
		slide.ButtonText,
		slide.ButtonURL,
		slide.IsActive,
		slide.SortOrder,
		slide.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_slide")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.SiteSlide.Table,
		schema.SiteSlide.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_slide")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
