// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package content

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

func (repository *PostgresRepository) ListSlots(ctx context.Context, kind SlotKind, language string) ([]*ContentSlot, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE ($1 = '' OR %s = $1)
		  AND ($2 = '' OR %s = $2)
		ORDER BY %s, %s, %s;
	`,
		schema.ContentSlot.ID,
		schema.ContentSlot.Kind,
		schema.ContentSlot.Key,
		schema.ContentSlot.Language,
		schema.ContentSlot.Title,
		schema.ContentSlot.Body,
		schema.ContentSlot.Document,
		schema.ContentSlot.CreatedAt,
		schema.ContentSlot.UpdatedAt,
		schema.ContentSlot.Table,
		schema.ContentSlot.Kind,
		schema.ContentSlot.Language,
		schema.ContentSlot.Kind,
		schema.ContentSlot.Key,
		schema.ContentSlot.Language,
	)

	rows, err := repository.db.Query(ctx, query, string(kind), language)
	if err != nil {
		return nil, dberr.Wrap(err, "list_content_slots")
	}
	defer rows.Close()

	var slots []*ContentSlot
	for rows.Next() {
		slot := &ContentSlot{}
		if err := rows.Scan(
			&slot.ID,
			&slot.Kind,
			&slot.Key,
			&slot.Language,
			&slot.Title,
			&slot.Body,
			&slot.Document,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_content_slot")
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func (repository *PostgresRepository) GetSlotByID(ctx context.Context, id string) (*ContentSlot, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.ContentSlot.ID,
		schema.ContentSlot.Kind,
		schema.ContentSlot.Key,
		schema.ContentSlot.Language,
		schema.ContentSlot.Title,
		schema.ContentSlot.Body,
		schema.ContentSlot.Document,
		schema.ContentSlot.CreatedAt,
		schema.ContentSlot.UpdatedAt,
		schema.ContentSlot.Table,
		schema.ContentSlot.ID,
	)

	slot := &ContentSlot{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.Kind,
		&slot.Key,
		&slot.Language,
		&slot.Title,
		&slot.Body,
		&slot.Document,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	return slot, dberr.Wrap(err, "get_content_slot")
}

func (repository *PostgresRepository) GetDocument(ctx context.Context, kind SlotKind, key, language string) ([]byte, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2 AND %s = $3;
	`,
		schema.ContentSlot.Document,
		schema.ContentSlot.Table,
		schema.ContentSlot.Kind,
		schema.ContentSlot.Key,
		schema.ContentSlot.Language,
	)

	var document []byte
	err := repository.db.QueryRow(ctx, query, string(kind), key, language).Scan(&document)
	if err != nil {
		return nil, dberr.Wrap(err, "get_content_document")
	}
	if document == nil {
		return nil, dberr.ErrNotFound
	}

	return document, nil
}

// Upsert writes the slot, replacing any existing row with the same
// (kind, key, language). The unique index makes the spec's implied
// uniqueness an actual constraint. On conflict the existing row keeps its
// id and creation time; RETURNING writes them back into slot so callers
// always see the persisted identity.
func (repository *PostgresRepository) Upsert(ctx context.Context, slot *ContentSlot) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (%s, %s, %s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
		RETURNING %s, %s;
	`,
		schema.ContentSlot.Table,
		schema.ContentSlot.ID,
		schema.ContentSlot.Kind,
		schema.ContentSlot.Key,
		schema.ContentSlot.Language,
		schema.ContentSlot.Title,
		schema.ContentSlot.Body,
		schema.ContentSlot.Document,
		schema.ContentSlot.CreatedAt,
		schema.ContentSlot.UpdatedAt,
		schema.ContentSlot.Kind,
		schema.ContentSlot.Key,
		schema.ContentSlot.Language,
		schema.ContentSlot.Title, schema.ContentSlot.Title,
		schema.ContentSlot.Body, schema.ContentSlot.Body,
		schema.ContentSlot.Document, schema.ContentSlot.Document,
		schema.ContentSlot.UpdatedAt, schema.ContentSlot.UpdatedAt,
		schema.ContentSlot.ID,
		schema.ContentSlot.CreatedAt,
	)

	now := time.Now()
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = now
	}
	slot.UpdatedAt = now

	err := repository.db.QueryRow(ctx, query,
		slot.ID,
		slot.Kind,
		slot.Key,
		slot.Language,
		slot.Title,
		slot.Body,
		slot.Document,
		slot.CreatedAt,
		slot.UpdatedAt,
	).Scan(&slot.ID, &slot.CreatedAt)
	return dberr.Wrap(err, "upsert_content_slot")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.ContentSlot.Table,
		schema.ContentSlot.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_content_slot")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
