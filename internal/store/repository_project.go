// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/models"
)

type projectRepository struct {
	*DB
}

func NewProjectRepository(db *DB) ProjectRepository {
	return &projectRepository{DB: db}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, createProject,
		project.ID, project.UserID, project.Name, project.Description,
		project.Framework, project.Template, project.Code, project.Published)

	created, err := scanProject(row)
	if err != nil {
		log.Err(err).Str("func", "CreateProject").Msg("error scanning inserted project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *projectRepository) GetProject(ctx context.Context, userID, projectID string) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, getProject, projectID, userID)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).Str("func", "GetProject").Msg("error scanning project row")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return project, nil
}

func (r *projectRepository) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, listProjects, userID)
	if err != nil {
		log.Err(err).Str("func", "ListProjects").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	projects := make([]models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			log.Err(err).Str("func", "ListProjects").Msg("error scanning project rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, userID, projectID string, update models.ProjectUpdate) (models.Project, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		// nothing to change; report the current state (or absence) of the row
		return r.GetProject(ctx, userID, projectID)
	}

	query, args, err := r.buildUpdateQuery(userID, projectID, update)
	if err != nil {
		log.Err(err).Str("func", "UpdateProject").Msg("error building update query")
		return models.Project{}, err
	}

	row := r.QueryRowContext(ctx, query, args...)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).Str("func", "UpdateProject").Msg("error scanning updated project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return project, nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, userID, projectID string) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, deleteProject, projectID, userID)
	if err != nil {
		log.Err(err).Str("func", "DeleteProject").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) CountProjects(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	err := r.QueryRowContext(ctx, countProjects, userID).Scan(&count)
	if err != nil {
		log.Err(err).Str("func", "CountProjects").Msg("error counting projects")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Framework,
		&p.Template, &p.Code, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Project{}, err
	}

	return p, nil
}
