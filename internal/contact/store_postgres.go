// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/demirhancelik/corporate-api/internal/platform/database/schema"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx. The payload column
// is jsonb and maps to json.RawMessage unparsed.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCards(ctx context.Context) ([]*ContactCard, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.SiteContactCard.ID,
		schema.SiteContactCard.CardType,
		schema.SiteContactCard.Title,
		schema.SiteContactCard.Payload,
		schema.SiteContactCard.SortOrder,
		schema.SiteContactCard.CreatedAt,
		schema.SiteContactCard.UpdatedAt,
		schema.SiteContactCard.Table,
		schema.SiteContactCard.SortOrder,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contact_cards")
	}
	defer rows.Close()

	var cards []*ContactCard
	for rows.Next() {
		card := &ContactCard{}
		if err := rows.Scan(
			&card.ID,
			&card.CardType,
			&card.Title,
			&card.Payload,
			&card.SortOrder,
			&card.CreatedAt,
			&card.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_contact_card")
		}
		cards = append(cards, card)
	}

	return cards, nil
}

func (repository *PostgresRepository) GetCardByID(ctx context.Context, id string) (*ContactCard, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.SiteContactCard.ID,
		schema.SiteContactCard.CardType,
		schema.SiteContactCard.Title,
		schema.SiteContactCard.Payload,
		schema.SiteContactCard.SortOrder,
		schema.SiteContactCard.CreatedAt,
		schema.SiteContactCard.UpdatedAt,
		schema.SiteContactCard.Table,
		schema.SiteContactCard.ID,
	)

	card := &ContactCard{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&card.ID,
		&card.CardType,
		&card.Title,
		&card.Payload,
		&card.SortOrder,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_contact_card")
	}

	return card, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, card *ContactCard) error {
	now := time.Now()
	if card.CreatedAt.IsZero() {
		card.CreatedAt = now
	}
	card.UpdatedAt = now

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		schema.SiteContactCard.Table,
		schema.SiteContactCard.ID,
		schema.SiteContactCard.CardType,
		schema.SiteContactCard.Title,
		schema.SiteContactCard.Payload,
		schema.SiteContactCard.SortOrder,
		schema.SiteContactCard.CreatedAt,
		schema.SiteContactCard.UpdatedAt,
	)

	if _, err := repository.db.Exec(ctx, query,
		card.ID,
		card.CardType,
		card.Title,
		card.Payload,
		card.SortOrder,
		card.CreatedAt,
		card.UpdatedAt,
	); err != nil {
		return dberr.Wrap(err, "insert_contact_card")
	}

	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, card *ContactCard) error {
	card.UpdatedAt = time.Now()

	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1;
	`,
		schema.SiteContactCard.Table,
		schema.SiteContactCard.CardType,
		schema.SiteContactCard.Title,
		schema.SiteContactCard.Payload,
		schema.SiteContactCard.SortOrder,
		schema.SiteContactCard.UpdatedAt,
		schema.SiteContactCard.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		card.ID,
		card.CardType,
		card.Title,
		card.Payload,
		card.SortOrder,
		card.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_contact_card")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.SiteContactCard.Table,
		schema.SiteContactCard.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact_card")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
