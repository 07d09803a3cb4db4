// Package http implements the REST transport layer of the application.
// It provides middleware, route handlers, and the uniform response envelope.
// Tracing, request logging, and authentication are handled here before
// requests reach the service layer; service errors are translated to HTTP
// statuses and machine-readable denial codes in one place (errors_mapper.go).
package http

import (
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	services *service.Services

	validate *validator.Validate

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		validate: validator.New(),
		logger:   logger,
	}
}
