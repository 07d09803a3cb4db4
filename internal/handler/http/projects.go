package http

import (
	"net/http"

	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/utils"
	"github.com/MKhiriev/ai-builder/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.services.Projects.List(ctx, utils.GetUserIDFromContext(ctx))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing projects failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, projects, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, err := h.services.Projects.Get(ctx, utils.GetUserIDFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, project, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createProjectRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	project, err := h.services.Projects.Create(ctx, utils.GetUserIDFromContext(ctx), models.Project{
		Name:        req.Name,
		Description: req.Description,
		Framework:   req.Framework,
		Template:    req.Template,
		Code:        req.Code,
	})
	if err != nil {
		log.Warn().Err(err).Msg("project creation rejected")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, project, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req updateProjectRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	project, err := h.services.Projects.Update(ctx, utils.GetUserIDFromContext(ctx), chi.URLParam(r, "id"), models.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
		Published:   req.Published,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.services.Projects.Delete(ctx, utils.GetUserIDFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteMessage(w, "project deleted", http.StatusOK)
}
