// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package users

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

func (repository *PostgresRepository) ListUsers(ctx context.Context) ([]*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.UsersAccount.ID,
		schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash,
		schema.UsersAccount.DisplayName,
		schema.UsersAccount.Role,
		schema.UsersAccount.IsBanned,
		schema.UsersAccount.ConfirmedAt,
		schema.UsersAccount.CreatedAt,
		schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.Table,
		schema.UsersAccount.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var accounts []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&user.DisplayName,
			&user.Role,
			&user.IsBanned,
			&user.ConfirmedAt,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		accounts = append(accounts, user)
	}

	return accounts, nil
}

func (repository *PostgresRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	return repository.getBy(ctx, schema.UsersAccount.ID, id)
}

func (repository *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return repository.getBy(ctx, schema.UsersAccount.Email, email)
}

func (repository *PostgresRepository) getBy(ctx context.Context, column, value string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.UsersAccount.ID,
		schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash,
		schema.UsersAccount.DisplayName,
		schema.UsersAccount.Role,
		schema.UsersAccount.IsBanned,
		schema.UsersAccount.ConfirmedAt,
		schema.UsersAccount.CreatedAt,
		schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.Table,
		column,
	)

	user := &User{}
	err := repository.db.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.Role,
		&user.IsBanned,
		&user.ConfirmedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}

	return user, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, user *User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID,
		schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash,
		schema.UsersAccount.DisplayName,
		schema.UsersAccount.Role,
		schema.UsersAccount.IsBanned,
		schema.UsersAccount.ConfirmedAt,
		schema.UsersAccount.CreatedAt,
		schema.UsersAccount.UpdatedAt,
	)

	if _, err := repository.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.Role,
		user.IsBanned,
		user.ConfirmedAt,
		user.CreatedAt,
		user.UpdatedAt,
	); err != nil {
		return dberr.Wrap(err, "insert_user")
	}

	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, user *User) error {
	user.UpdatedAt = time.Now()

	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1;
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash,
		schema.UsersAccount.DisplayName,
		schema.UsersAccount.Role,
		schema.UsersAccount.IsBanned,
		schema.UsersAccount.ConfirmedAt,
		schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.Role,
		user.IsBanned,
		user.ConfirmedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
