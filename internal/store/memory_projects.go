package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/ai-builder/models"
)

// DemoProjectStore keeps projects of the shared demo identity in process
// memory. It implements [ProjectRepository] so the service layer can treat
// demo traffic and persisted traffic uniformly, but it enforces a hard cap
// on the number of stored projects and loses everything on restart.
type DemoProjectStore struct {
	mu       sync.RWMutex
	projects map[string]models.Project
	limit    int
}

// NewDemoProjectStore returns an empty demo store capped at limit projects.
func NewDemoProjectStore(limit int) *DemoProjectStore {
	return &DemoProjectStore{
		projects: make(map[string]models.Project),
		limit:    limit,
	}
}

func (s *DemoProjectStore) CreateProject(_ context.Context, project models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.projects) >= s.limit {
		return models.Project{}, ErrProjectLimitReached
	}

	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now
	s.projects[project.ID] = project

	return project, nil
}

func (s *DemoProjectStore) GetProject(_ context.Context, userID, projectID string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[projectID]
	if !ok || project.UserID != userID {
		return models.Project{}, ErrProjectNotFound
	}

	return project, nil
}

func (s *DemoProjectStore) ListProjects(_ context.Context, userID string) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.projects))
	for _, project := range s.projects {
		if project.UserID == userID {
			projects = append(projects, project)
		}
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})

	return projects, nil
}

func (s *DemoProjectStore) UpdateProject(_ context.Context, userID, projectID string, update models.ProjectUpdate) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[projectID]
	if !ok || project.UserID != userID {
		return models.Project{}, ErrProjectNotFound
	}

	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Code != nil {
		project.Code = *update.Code
	}
	if update.Published != nil {
		project.Published = *update.Published
	}
	if !update.IsEmpty() {
		project.UpdatedAt = time.Now().UTC()
	}
	s.projects[projectID] = project

	return project, nil
}

func (s *DemoProjectStore) DeleteProject(_ context.Context, userID, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[projectID]
	if !ok || project.UserID != userID {
		return ErrProjectNotFound
	}
	delete(s.projects, projectID)

	return nil
}

func (s *DemoProjectStore) CountProjects(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, project := range s.projects {
		if project.UserID == userID {
			count++
		}
	}

	return count, nil
}
