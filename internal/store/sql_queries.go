package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/ai-builder/models"
)

const (
	createProfile = `INSERT INTO profiles (user_id, email, name, plan, credits, credits_used)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, email, name, plan, credits, credits_used, created_at;`

	getProfile = `SELECT user_id, email, name, plan, credits, credits_used, created_at
    FROM profiles
    WHERE user_id = $1;`

	// deductCredits is the atomic check-and-decrement at the heart of the
	// credit ledger. The balance guard lives in the WHERE clause: when two
	// requests race, only the rows that still satisfy credits >= cost are
	// updated, and the loser observes zero affected rows.
	deductCredits = `UPDATE profiles
    SET credits = credits - $1, credits_used = credits_used + $1
    WHERE user_id = $2 AND credits >= $1;`

	createProject = `INSERT INTO projects (id, user_id, name, description, framework, template, code, published)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, user_id, name, description, framework, template, code, published, created_at, updated_at;`

	getProject = `SELECT id, user_id, name, description, framework, template, code, published, created_at, updated_at
    FROM projects
    WHERE id = $1 AND user_id = $2;`

	listProjects = `SELECT id, user_id, name, description, framework, template, code, published, created_at, updated_at
    FROM projects
    WHERE user_id = $1
    ORDER BY updated_at DESC;`

	deleteProject = `DELETE FROM projects
    WHERE id = $1 AND user_id = $2;`

	countProjects = `SELECT COUNT(*)
    FROM projects
    WHERE user_id = $1;`
)

// buildUpdateQuery dynamically builds the partial UPDATE for a project.
// Only non-nil fields of update contribute SET clauses; updated_at is always
// touched so that list ordering reflects the mutation.
func (r *projectRepository) buildUpdateQuery(userID, projectID string, update models.ProjectUpdate) (string, []any, error) {
	builder := sq.Update("projects").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": projectID, "user_id": userID}).
		Suffix("RETURNING id, user_id, name, description, framework, template, code, published, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Code != nil {
		builder = builder.Set("code", *update.Code)
	}
	if update.Published != nil {
		builder = builder.Set("published", *update.Published)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
