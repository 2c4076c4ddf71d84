// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package project

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
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

func (repository *PostgresRepository) ListProjects(ctx context.Context, language string, category Category) ([]*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE ($1 = '' OR %s = $1)
		  AND ($2 = '' OR %s = $2)
		ORDER BY %s ASC, %s DESC;
	`,
		schema.SiteProject.ID,
		schema.SiteProject.Title,
		schema.SiteProject.Description,
		schema.SiteProject.Location,
		schema.SiteProject.Category,
		schema.SiteProject.StartYear,
		schema.SiteProject.EndYear,
		schema.SiteProject.Language,
		schema.SiteProject.SortOrder,
		schema.SiteProject.CreatedAt,
		schema.SiteProject.UpdatedAt,
		schema.SiteProject.Table,
		schema.SiteProject.Language,
		schema.SiteProject.Category,
		schema.SiteProject.SortOrder,
		schema.SiteProject.EndYear,
	)

	rows, err := repository.db.Query(ctx, query, language, string(category))
	if err != nil {
		return nil, dberr.Wrap(err, "list_projects")
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		project := &Project{}
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.Location,
			&project.Category,
			&project.StartYear,
			&project.EndYear,
			&project.Language,
			&project.SortOrder,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_project")
		}
		projects = append(projects, project)
	}

	if err := repository.attachImages(ctx, projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (repository *PostgresRepository) GetProjectByID(ctx context.Context, id string) (*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.SiteProject.ID,
		schema.SiteProject.Title,
		schema.SiteProject.Description,
		schema.SiteProject.Location,
		schema.SiteProject.Category,
		schema.SiteProject.StartYear,
		schema.SiteProject.EndYear,
		schema.SiteProject.Language,
		schema.SiteProject.SortOrder,
		schema.SiteProject.CreatedAt,
		schema.SiteProject.UpdatedAt,
		schema.SiteProject.Table,
		schema.SiteProject.ID,
	)

	project := &Project{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Location,
		&project.Category,
		&project.StartYear,
		&project.EndYear,
		&project.Language,
		&project.SortOrder,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_project")
	}

	projects := []*Project{project}
	if err := repository.attachImages(ctx, projects); err != nil {
		return nil, err
	}

	return project, nil
}

// Create inserts the project row and its image set in one transaction.
func (repository *PostgresRepository) Create(ctx context.Context, project *Project) error {
	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	return repository.inTx(ctx, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`,
			schema.SiteProject.Table,
			schema.SiteProject.ID,
			schema.SiteProject.Title,
			schema.SiteProject.Description,
			schema.SiteProject.Location,
			schema.SiteProject.Category,
			schema.SiteProject.StartYear,
			schema.SiteProject.EndYear,
			schema.SiteProject.Language,
			schema.SiteProject.SortOrder,
			schema.SiteProject.CreatedAt,
			schema.SiteProject.UpdatedAt,
		)

		if _, err := tx.Exec(ctx, query,
			project.ID,
			project.Title,
			project.Description,
			project.Location,
			project.Category,
			project.StartYear,
			project.EndYear,
			project.Language,
			project.SortOrder,
			project.CreatedAt,
			project.UpdatedAt,
		); err != nil {
			return dberr.Wrap(err, "insert_project")
		}

		return repository.replaceImages(ctx, tx, project)
	})
}

// Update replaces the project row and rewrites its full image set.
//
// The unconditional overwrite implements the documented last-write-wins
// policy for concurrent admin edits.
func (repository *PostgresRepository) Update(ctx context.Context, project *Project) error {
	project.UpdatedAt = time.Now()

	return repository.inTx(ctx, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`
			UPDATE %s SET
				%s = $2, %s = $3, %s = $4, %s = $5,
				%s = $6, %s = $7, %s = $8, %s = $9, %s = $10
			WHERE %s = $1;
		`,
			schema.SiteProject.Table,
			schema.SiteProject.Title,
			schema.SiteProject.Description,
			schema.SiteProject.Location,
			schema.SiteProject.Category,
			schema.SiteProject.StartYear,
			schema.SiteProject.EndYear,
			schema.SiteProject.Language,
			schema.SiteProject.SortOrder,
			schema.SiteProject.UpdatedAt,
			schema.SiteProject.ID,
		)

		tag, err := tx.Exec(ctx, query,
			project.ID,
			project.Title,
			project.Description,
			project.Location,
			project.Category,
			project.StartYear,
			project.EndYear,
			project.Language,
			project.SortOrder,
			project.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "update_project")
		}
		if tag.RowsAffected() == 0 {
			return dberr.ErrNotFound
		}

		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
			schema.SiteProjectImage.Table,
			schema.SiteProjectImage.ProjectID,
		)
		if _, err := tx.Exec(ctx, deleteQuery, project.ID); err != nil {
			return dberr.Wrap(err, "delete_project_images")
		}

		return repository.replaceImages(ctx, tx, project)
	})
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	// Image rows cascade via the FK constraint.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.SiteProject.Table,
		schema.SiteProject.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_project")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// # Internal Helpers

// inTx runs fn inside a transaction with commit/rollback handling.
func (repository *PostgresRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return dberr.Wrap(err, "commit_tx")
	}
	return nil
}

// replaceImages inserts the project's current image slice.
func (repository *PostgresRepository) replaceImages(ctx context.Context, tx pgx.Tx, project *Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6);
	`,
		schema.SiteProjectImage.Table,
		schema.SiteProjectImage.ID,
		schema.SiteProjectImage.ProjectID,
		schema.SiteProjectImage.URL,
		schema.SiteProjectImage.AltText,
		schema.SiteProjectImage.IsPrimary,
		schema.SiteProjectImage.SortOrder,
	)

	for i := range project.Images {
		image := &project.Images[i]
		image.ProjectID = project.ID
		if _, err := tx.Exec(ctx, query,
			image.ID,
			image.ProjectID,
			image.URL,
			image.AltText,
			image.IsPrimary,
			image.SortOrder,
		); err != nil {
			return dberr.Wrap(err, "insert_project_image")
		}
	}

	return nil
}

// attachImages loads image rows for the given projects in one query.
func (repository *PostgresRepository) attachImages(ctx context.Context, projects []*Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]string, 0, len(projects))
	byID := make(map[string]*Project, len(projects))
	for _, project := range projects {
		ids = append(ids, project.ID)
		byID[project.ID] = project
		project.Images = []ProjectImage{}
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s ASC;
	`,
		schema.SiteProjectImage.ID,
		schema.SiteProjectImage.ProjectID,
		schema.SiteProjectImage.URL,
		schema.SiteProjectImage.AltText,
		schema.SiteProjectImage.IsPrimary,
		schema.SiteProjectImage.SortOrder,
		schema.SiteProjectImage.Table,
		schema.SiteProjectImage.ProjectID,
		schema.SiteProjectImage.SortOrder,
	)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_project_images")
	}
	defer rows.Close()

	for rows.Next() {
		var image ProjectImage
		if err := rows.Scan(
			&image.ID,
			&image.ProjectID,
			&image.URL,
			&image.AltText,
			&image.IsPrimary,
			&image.SortOrder,
		); err != nil {
			return dberr.Wrap(err, "scan_project_image")
		}
		if project, ok := byID[image.ProjectID]; ok {
			project.Images = append(project.Images, image)
		}
	}

	return nil
}
