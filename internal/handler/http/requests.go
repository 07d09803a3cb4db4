package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/ai-builder/internal/service"
)

// Typed request bodies. Validation tags are enforced by decodeAndValidate
// before any service call; failures map to 400 via ErrInvalidDataProvided.

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createProjectRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Framework   string `json:"framework" validate:"omitempty,oneof=react vue svelte html"`
	Template    string `json:"template" validate:"max=100"`
	Code        string `json:"code"`
}

type updateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Code        *string `json:"code"`
	Published   *bool   `json:"published"`
}

type generateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Type   string `json:"type" validate:"omitempty,oneof=component landing dashboard ecommerce portfolio blog saas fullstack"`
}

type describeRequest struct {
	Description string `json:"description" validate:"required"`
}

type improveRequest struct {
	Code         string `json:"code" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
}

type explainRequest struct {
	Code string `json:"code" validate:"required"`
}

type imageRequest struct {
	Prompt   string `json:"prompt" validate:"required"`
	Style    string `json:"style"`
	Provider string `json:"provider" validate:"omitempty,oneof=stability huggingface"`
}

type ttsRequest struct {
	Text    string `json:"text" validate:"required,max=5000"`
	VoiceID string `json:"voiceId"`
}

// decodeAndValidate parses the JSON body into dst and runs the struct
// validation tags. Both failure modes surface as ErrInvalidDataProvided so
// the error mapper answers 400.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", service.ErrInvalidDataProvided)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidDataProvided, err)
	}

	return nil
}
