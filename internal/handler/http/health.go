package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/ai-builder/internal/utils"
	"github.com/MKhiriev/ai-builder/models"
)

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	availability := h.services.Voice.Availability()

	_, _ = utils.WriteSuccess(w, models.HealthPayload{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: models.HealthServices{
			AI:    h.services.Generation.Available(),
			Image: h.services.Images.Available(),
			Voice: availability.TTS || availability.STT,
		},
	}, http.StatusOK)
}
