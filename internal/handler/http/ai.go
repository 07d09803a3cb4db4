// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/utils"
	"github.com/MKhiriev/ai-builder/models"
)

// chargeCredits runs the ledger gate for the calling user. The deduction
// happens before the vendor call and is not refunded on downstream failure.
func (h *Handler) chargeCredits(w http.ResponseWriter, r *http.Request) bool {
	ctx := r.Context()

	err := h.services.Credits.AuthorizeAndDebit(ctx, utils.GetUserIDFromContext(ctx), h.services.Credits.GenerationCost())
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("paid operation denied")
		writeServiceError(w, err)
		return false
	}

	return true
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req generateRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	if !h.chargeCredits(w, r) {
		return
	}

	result, err := h.services.Generation.Generate(ctx, models.GenerationRequest{
		Prompt: req.Prompt,
		Type:   models.ProjectType(req.Type),
	})
	if err != nil {
		log.Err(err).Msg("generation failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, result, http.StatusOK)
}

// generateLanding is a convenience wrapper that pins the landing page
// template.
func (h *Handler) generateLanding(w http.ResponseWriter, r *http.Request) {
	h.generateWithType(w, r, models.TypeLanding)
}

// generateDashboard pins the dashboard template.
func (h *Handler) generateDashboard(w http.ResponseWriter, r *http.Request) {
	h.generateWithType(w, r, models.TypeDashboard)
}

func (h *Handler) generateWithType(w http.ResponseWriter, r *http.Request, projectType models.ProjectType) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req describeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	if !h.chargeCredits(w, r) {
		return
	}

	result, err := h.services.Generation.Generate(ctx, models.GenerationRequest{
		Prompt: req.Description,
		Type:   projectType,
	})
	if err != nil {
		log.Err(err).Str("type", string(projectType)).Msg("generation failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, result, http.StatusOK)
}

func (h *Handler) improve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req improveRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	if !h.chargeCredits(w, r) {
		return
	}

	result, err := h.services.Generation.Improve(ctx, req.Code, req.Instructions)
	if err != nil {
		log.Err(err).Msg("improve failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, result, http.StatusOK)
}

func (h *Handler) explain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req explainRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	if !h.chargeCredits(w, r) {
		return
	}

	explanation, err := h.services.Generation.Explain(ctx, req.Code)
	if err != nil {
		log.Err(err).Msg("explain failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, map[string]string{"explanation": explanation}, http.StatusOK)
}
