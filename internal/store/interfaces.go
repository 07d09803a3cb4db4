package store

import (
	"context"

	"github.com/MKhiriev/ai-builder/models"
)

// ProfileRepository persists account profiles and performs the balance
// mutation required by the credit ledger.
type ProfileRepository interface {
	// CreateProfile inserts a fresh profile row and returns the canonical
	// stored representation.
	CreateProfile(ctx context.Context, user models.User) (models.User, error)

	// GetProfile fetches the profile of the given user id.
	// Returns ErrProfileNotFound when no row matches.
	GetProfile(ctx context.Context, userID string) (models.User, error)

	// DeductCredits debits cost from the user's balance as a single
	// conditional update: the write succeeds only while credits >= cost,
	// so concurrent requests cannot over-spend the balance.
	// Returns ErrInsufficientCredits when the condition fails and
	// ErrProfileNotFound when the row is absent.
	DeductCredits(ctx context.Context, userID string, cost int) error
}

// ProjectRepository persists user-owned projects. Every method is scoped by
// user id; a project owned by someone else behaves exactly like a missing
// one (ErrProjectNotFound).
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, userID, projectID string) (models.Project, error)
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)
	UpdateProject(ctx context.Context, userID, projectID string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, userID, projectID string) error
	CountProjects(ctx context.Context, userID string) (int, error)
}
