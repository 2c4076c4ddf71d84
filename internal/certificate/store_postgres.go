// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package certificate

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

func (repository *PostgresRepository) ListCertificates(ctx context.Context, kind Kind, activeOnly bool) ([]*Certificate, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		  AND ($2 = false OR %s = true)
		ORDER BY %s DESC;
	`,
		schema.SiteCertificate.ID,
		schema.SiteCertificate.Kind,
		schema.SiteCertificate.Title,
		schema.SiteCertificate.Description,
		schema.SiteCertificate.CertificateNumber,
		schema.SiteCertificate.IssueDate,
		schema.SiteCertificate.ExpiryDate,
		schema.SiteCertificate.Authority,
		schema.SiteCertificate.ImageURL,
		schema.SiteCertificate.IsActive,
		schema.SiteCertificate.CreatedAt,
		schema.SiteCertificate.UpdatedAt,
		schema.SiteCertificate.Table,
		schema.SiteCertificate.Kind,
		schema.SiteCertificate.IsActive,
		schema.SiteCertificate.IssueDate,
	)

	rows, err := repository.db.Query(ctx, query, string(kind), activeOnly)
	if err != nil {
		return nil, dberr.Wrap(err, "list_certificates")
	}
	defer rows.Close()

	var certificates []*Certificate
	for rows.Next() {
		certificate := &Certificate{}
		if err := rows.Scan(
			&certificate.ID,
			&certificate.Kind,
			&certificate.Title,
			&certificate.Description,
			&certificate.Number,
			&certificate.IssueDate,
			&certificate.ExpiryDate,
			&certificate.Authority,
			&certificate.ImageURL,
			&certificate.IsActive,
			&certificate.CreatedAt,
			&certificate.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_certificate")
		}
		certificates = append(certificates, certificate)
	}

	return certificates, nil
}

func (repository *PostgresRepository) GetCertificateByID(ctx context.Context, id string) (*Certificate, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.SiteCertificate.ID,
		schema.SiteCertificate.Kind,
		schema.SiteCertificate.Title,
		schema.SiteCertificate.Description,
		schema.SiteCertificate.CertificateNumber,
		schema.SiteCertificate.IssueDate,
		schema.SiteCertificate.ExpiryDate,
		schema.SiteCertificate.Authority,
		schema.SiteCertificate.ImageURL,
		schema.SiteCertificate.IsActive,
		schema.SiteCertificate.CreatedAt,
		schema.SiteCertificate.UpdatedAt,
		schema.SiteCertificate.Table,
		schema.SiteCertificate.ID,
	)

	certificate := &Certificate{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&certificate.ID,
		&certificate.Kind,
		&certificate.Title,
		&certificate.Description,
		&certificate.Number,
		&certificate.IssueDate,
		&certificate.ExpiryDate,
		&certificate.Authority,
		&certificate.ImageURL,
		&certificate.IsActive,
		&certificate.CreatedAt,
		&certificate.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_certificate")
	}

	return certificate, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, certificate *Certificate) error {
	now := time.Now()
	if certificate.CreatedAt.IsZero() {
		certificate.CreatedAt = now
	}
	certificate.UpdatedAt = now

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		schema.SiteCertificate.Table,
		schema.SiteCertificate.ID,
		schema.SiteCertificate.Kind,
		schema.SiteCertificate.Title,
		schema.SiteCertificate.Description,
		schema.SiteCertificate.CertificateNumber,
		schema.SiteCertificate.IssueDate,
		schema.SiteCertificate.ExpiryDate,
		schema.SiteCertificate.Authority,
		schema.SiteCertificate.ImageURL,
		schema.SiteCertificate.IsActive,
		schema.SiteCertificate.CreatedAt,
		schema.SiteCertificate.UpdatedAt,
	)

	if _, err := repository.db.Exec(ctx, query,
		certificate.ID,
		certificate.Kind,
		certificate.Title,
		certificate.Description,
		certificate.Number,
		certificate.IssueDate,
		certificate.ExpiryDate,
		certificate.Authority,
		certificate.ImageURL,
		certificate.IsActive,
		certificate.CreatedAt,
		certificate.UpdatedAt,
	); err != nil {
		return dberr.Wrap(err, "insert_certificate")
	}

	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, certificate *Certificate) error {
	certificate.UpdatedAt = time.Now()

	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8, %s = $9, %s = $10
		WHERE %s = $1;
	`,
		schema.SiteCertificate.Table,
		schema.SiteCertificate.Title,
		schema.SiteCertificate.Description,
		schema.SiteCertificate.CertificateNumber,
		schema.SiteCertificate.IssueDate,
		schema.SiteCertificate.ExpiryDate,
		schema.SiteCertificate.Authority,
		schema.SiteCertificate.ImageURL,
		schema.SiteCertificate.IsActive,
		schema.SiteCertificate.UpdatedAt,
		schema.SiteCertificate.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		certificate.ID,
		certificate.Title,
		certificate.Description,
		certificate.Number,
		certificate.IssueDate,
		certificate.ExpiryDate,
		certificate.Authority,
		certificate.ImageURL,
		certificate.IsActive,
		certificate.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_certificate")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.SiteCertificate.Table,
		schema.SiteCertificate.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_certificate")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
