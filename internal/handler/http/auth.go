package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/service"
	"github.com/MKhiriev/ai-builder/internal/utils"
	"github.com/MKhiriev/ai-builder/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	user, token, err := h.services.Auth.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		// a pending email confirmation is a notice, not a failure
		if errors.Is(err, service.ErrVerificationRequired) {
			_, _ = utils.WriteMessage(w, "registration accepted, confirm your email to sign in", http.StatusOK)
			return
		}
		log.Err(err).Msg("registration failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, models.AuthPayload{User: user, Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	user, token, err := h.services.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Warn().Err(err).Msg("login failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, models.AuthPayload{User: user, Token: token.SignedString}, http.StatusOK)
}

// logout holds no server-side session state; the client discards its token.
func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteMessage(w, "logged out", http.StatusOK)
}
