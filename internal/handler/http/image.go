package http

import (
	"net/http"

	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/utils"
)

func (h *Handler) generateImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req imageRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	// image generation is not metered; only the /ai routes spend credits
	result, err := h.services.Images.Generate(ctx, req.Prompt, req.Style, req.Provider)
	if err != nil {
		log.Err(err).Msg("image generation failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, result, http.StatusOK)
}

func (h *Handler) imageStyles(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteSuccess(w, h.services.Images.Styles(), http.StatusOK)
}
