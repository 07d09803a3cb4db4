// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/ai-builder/internal/config"
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/store"
	"github.com/MKhiriev/ai-builder/internal/utils"
	"github.com/MKhiriev/ai-builder/models"
)

// projectService routes project CRUD to the right repository: the demo
// identity works against the in-memory store, everyone else against
// Postgres. The free-plan creation cap is enforced here; the demo store
// enforces its own hard cap internally.
type projectService struct {
	projects     store.ProjectRepository
	demoProjects store.ProjectRepository
	profiles     store.ProfileRepository

	uuidGenerator *utils.UUIDGenerator

	// freeProjectLimit caps how many projects a free-plan user may own.
	freeProjectLimit int

	logger *logger.Logger
}

func NewProjectService(storages *store.Storages, cfg config.Billing, logger *logger.Logger) ProjectService {
	return &projectService{
		projects:         storages.Projects,
		demoProjects:     storages.DemoProjects,
		profiles:         storages.Profiles,
		uuidGenerator:    utils.NewUUIDGenerator(),
		freeProjectLimit: cfg.FreeProjectLimit,
		logger:           logger,
	}
}

func (s *projectService) repoFor(userID string) store.ProjectRepository {
	if userID == models.DemoUserID {
		return s.demoProjects
	}
	return s.projects
}

func (s *projectService) Create(ctx context.Context, userID string, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(project.Name) == "" {
		return models.Project{}, fmt.Errorf("%w: project name is required", ErrInvalidDataProvided)
	}
	if project.Framework == "" {
		project.Framework = models.FrameworkReact
	}

	project.ID = s.uuidGenerator.Generate()
	project.UserID = userID
	project.Published = false

	if userID != models.DemoUserID {
		if err := s.checkCreationCap(ctx, userID); err != nil {
			return models.Project{}, err
		}
	}

	created, err := s.repoFor(userID).CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("func", "Create").Str("user_id", userID).Msg("project creation failed")
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}

	return created, nil
}

// checkCreationCap rejects a create for free-plan users already at their
// limit. Paid plans are uncapped.
func (s *projectService) checkCreationCap(ctx context.Context, userID string) error {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("check project cap: %w", err)
	}
	if profile.Plan != models.PlanFree {
		return nil
	}

	count, err := s.projects.CountProjects(ctx, userID)
	if err != nil {
		return fmt.Errorf("check project cap: %w", err)
	}
	if count >= s.freeProjectLimit {
		return fmt.Errorf("%w: free plan allows %d projects", ErrProjectLimitReached, s.freeProjectLimit)
	}

	return nil
}

func (s *projectService) Get(ctx context.Context, userID, projectID string) (models.Project, error) {
	return s.repoFor(userID).GetProject(ctx, userID, projectID)
}

func (s *projectService) List(ctx context.Context, userID string) ([]models.Project, error) {
	return s.repoFor(userID).ListProjects(ctx, userID)
}

func (s *projectService) Update(ctx context.Context, userID, projectID string, update models.ProjectUpdate) (models.Project, error) {
	return s.repoFor(userID).UpdateProject(ctx, userID, projectID, update)
}

func (s *projectService) Delete(ctx context.Context, userID, projectID string) error {
	return s.repoFor(userID).DeleteProject(ctx, userID, projectID)
}
