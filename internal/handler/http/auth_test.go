package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/ai-builder/internal/service"
	"github.com/MKhiriev/ai-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, body string) models.Response {
	t.Helper()
	var envelope models.Response
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope
}

func TestRegister_Success(t *testing.T) {
	auth := &authServiceMock{
		RegisterFunc: func(_ context.Context, email, password, name string) (models.User, models.Token, error) {
			assert.Equal(t, "ada@example.com", email)
			assert.Equal(t, "Ada", name)
			return models.User{UserID: "u-1", Email: email, Plan: models.PlanFree, Credits: 10},
				models.Token{SignedString: "jwt-token"}, nil
		},
	}
	h := newTestHandler(&service.Services{Auth: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"ada@example.com","password":"secret1","name":"Ada"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.String())
	assert.True(t, envelope.Success)

	payload, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "jwt-token", payload["token"])
}

func TestRegister_ValidationRejectsBadEmail(t *testing.T) {
	h := newTestHandler(&service.Services{
		Auth: &authServiceMock{
			RegisterFunc: func(_ context.Context, _, _, _ string) (models.User, models.Token, error) {
				t.Fatal("service must not be called on validation failure")
				return models.User{}, models.Token{}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"not-an-email","password":"secret1"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec.Body.String()).Success)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := newTestHandler(&service.Services{
		Auth: &authServiceMock{
			RegisterFunc: func(_ context.Context, _, _, _ string) (models.User, models.Token, error) {
				return models.User{}, models.Token{}, service.ErrEmailAlreadyRegistered
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"ada@example.com","password":"secret1"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}

func TestRegister_VerificationPendingIsNotice(t *testing.T) {
	h := newTestHandler(&service.Services{
		Auth: &authServiceMock{
			RegisterFunc: func(_ context.Context, _, _, _ string) (models.User, models.Token, error) {
				return models.User{}, models.Token{}, service.ErrVerificationRequired
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"ada@example.com","password":"secret1"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.String())
	assert.True(t, envelope.Success)
	assert.Contains(t, envelope.Message, "confirm")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := newTestHandler(&service.Services{
		Auth: &authServiceMock{
			LoginFunc: func(_ context.Context, _, _ string) (models.User, models.Token, error) {
				return models.User{}, models.Token{}, service.ErrInvalidCredentials
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_RequiresAuthAndAnswersMessage(t *testing.T) {
	h := newTestHandler(&service.Services{
		Auth: &authServiceMock{
			ParseTokenFunc: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: "u-1"}, nil
			},
		},
	})

	// without a token
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// with a token
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some-jwt")
	rec = httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec.Body.String()).Success)
}
