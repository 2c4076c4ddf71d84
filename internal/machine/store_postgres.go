// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package machine

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

func (repository *PostgresRepository) ListMachines(ctx context.Context) ([]*Machine, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.SiteMachine.ID,
		schema.SiteMachine.Quantity,
		schema.SiteMachine.Description,
		schema.SiteMachine.Model,
		schema.SiteMachine.Brand,
		schema.SiteMachine.IsDomestic,
		schema.SiteMachine.IsImported,
		schema.SiteMachine.Capacity,
		schema.SiteMachine.CreatedAt,
		schema.SiteMachine.UpdatedAt,
		schema.SiteMachine.Table,
		schema.SiteMachine.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_machines")
	}
	defer rows.Close()

	var machines []*Machine
	for rows.Next() {
		machine := &Machine{}
		if err := rows.Scan(
			&machine.ID,
			&machine.Quantity,
			&machine.Description,
			&machine.Model,
			&machine.Brand,
			&machine.IsDomestic,
			&machine.IsImported,
			&machine.Capacity,
			&machine.CreatedAt,
			&machine.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_machine")
		}
		machines = append(machines, machine)
	}

	return machines, nil
}

func (repository *PostgresRepository) GetMachineByID(ctx context.Context, id string) (*Machine, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.SiteMachine.ID,
		schema.SiteMachine.Quantity,
		schema.SiteMachine.Description,
		schema.SiteMachine.Model,
		schema.SiteMachine.Brand,
		schema.SiteMachine.IsDomestic,
		schema.SiteMachine.IsImported,
		schema.SiteMachine.Capacity,
		schema.SiteMachine.CreatedAt,
		schema.SiteMachine.UpdatedAt,
		schema.SiteMachine.Table,
		schema.SiteMachine.ID,
	)

	machine := &Machine{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&machine.ID,
		&machine.Quantity,
		&machine.Description,
		&machine.Model,
		&machine.Brand,
		&machine.IsDomestic,
		&machine.IsImported,
		&machine.Capacity,
		&machine.CreatedAt,
		&machine.UpdatedAt,
	)
	return machine, dberr.Wrap(err, "get_machine")
}

func (repository *PostgresRepository) Create(ctx context.Context, machine *Machine) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`,
		schema.SiteMachine.Table,
		schema.SiteMachine.ID,
		schema.SiteMachine.Quantity,
		schema.SiteMachine.Description,
		schema.SiteMachine.Model,
		schema.SiteMachine.Brand,
		schema.SiteMachine.IsDomestic,
		schema.SiteMachine.IsImported,
		schema.SiteMachine.Capacity,
		schema.SiteMachine.CreatedAt,
		schema.SiteMachine.UpdatedAt,
	)

	now := time.Now()
	if machine.CreatedAt.IsZero() {
		machine.CreatedAt = now
	}
	machine.UpdatedAt = now

	_, err := repository.db.Exec(ctx, query,
		machine.ID,
		machine.Quantity,
		machine.Description,
		machine.Model,
		machine.Brand,
		machine.IsDomestic,
		machine.IsImported,
		machine.Capacity,
		machine.CreatedAt,
		machine.UpdatedAt,
	)
	return dberr.Wrap(err, "insert_machine")
}

func (repository *PostgresRepository) Update(ctx context.Context, machine *Machine) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8, %s = $9
		WHERE %s = $1;
	`,
		schema.SiteMachine.Table,
		schema.SiteMachine.Quantity,
		schema.SiteMachine.Description,
		schema.SiteMachine.Model,
		schema.SiteMachine.Brand,
		schema.SiteMachine.IsDomestic,
		schema.SiteMachine.IsImported,
		schema.SiteMachine.Capacity,
		schema.SiteMachine.UpdatedAt,
		schema.SiteMachine.ID,
	)

	machine.UpdatedAt = time.Now()

	tag, err := repository.db.Exec(ctx, query,
		machine.ID,
		machine.Quantity,
		machine.Description,
		machine.Model,
		machine.Brand,
		machine.IsDomestic,
		machine.IsImported,
		machine.Capacity,
		machine.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_machine")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.SiteMachine.Table,
		schema.SiteMachine.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_machine")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
