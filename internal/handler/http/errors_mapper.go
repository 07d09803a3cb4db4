package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ai-builder/internal/service"
	"github.com/MKhiriev/ai-builder/internal/store"
	"github.com/MKhiriev/ai-builder/internal/utils"
)

// Machine-readable denial codes carried in the error envelope alongside the
// HTTP status.
const (
	codeInsufficientCredits = "INSUFFICIENT_CREDITS"
	codeLimitReached        = "LIMIT_REACHED"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	service.ErrEmailAlreadyRegistered: http.StatusBadRequest,
	service.ErrInvalidCredentials:     http.StatusUnauthorized,
	service.ErrInsufficientCredits:    http.StatusPaymentRequired,
	service.ErrProjectLimitReached:    http.StatusForbidden,
	service.ErrGenerationUnavailable:  http.StatusInternalServerError,
	service.ErrGenerationFailed:       http.StatusInternalServerError,
	service.ErrImageUnavailable:       http.StatusInternalServerError,
	service.ErrImageFailed:            http.StatusInternalServerError,
	service.ErrVoiceUnavailable:       http.StatusInternalServerError,

	store.ErrProfileNotFound:     http.StatusNotFound,
	store.ErrProjectNotFound:     http.StatusNotFound,
	store.ErrProjectLimitReached: http.StatusForbidden,
	store.ErrInsufficientCredits: http.StatusPaymentRequired,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorCodeMap = map[error]string{
	service.ErrInsufficientCredits: codeInsufficientCredits,
	store.ErrInsufficientCredits:   codeInsufficientCredits,
	service.ErrProjectLimitReached: codeLimitReached,
	store.ErrProjectLimitReached:   codeLimitReached,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func codeFromError(err error) string {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return ""
}

// writeServiceError translates a service or store error into the failure
// envelope. Unmapped errors surface as an opaque 500 so internals never leak
// into response bodies.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	_, _ = utils.WriteError(w, message, codeFromError(err), status)
}
