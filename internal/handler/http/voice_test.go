package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/ai-builder/internal/service"
	"github.com/MKhiriev/ai-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voiceTestServices(voice *voiceServiceMock) *service.Services {
	return &service.Services{
		Auth:  &authServiceMock{},
		Voice: voice,
	}
}

func TestTextToSpeech_AnswersRawAudio(t *testing.T) {
	voice := &voiceServiceMock{
		TextToSpeechFunc: func(_ context.Context, text, voiceID string) ([]byte, error) {
			assert.Equal(t, "hello there", text)
			assert.Equal(t, "voice-7", voiceID)
			return []byte("mp3-bytes"), nil
		},
	}
	h := newTestHandler(voiceTestServices(voice))

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, demoRequest(http.MethodPost, "/api/voice/tts",
		`{"text":"hello there","voiceId":"voice-7"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "mp3-bytes", rec.Body.String())
}

func TestTextToSpeech_UnconfiguredAnswersEnvelope(t *testing.T) {
	voice := &voiceServiceMock{
		TextToSpeechFunc: func(_ context.Context, _, _ string) ([]byte, error) {
			return nil, service.ErrVoiceUnavailable
		},
	}
	h := newTestHandler(voiceTestServices(voice))

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, demoRequest(http.MethodPost, "/api/voice/tts", `{"text":"hello"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, decodeEnvelope(t, rec.Body.String()).Success)
}

func TestSpeechToText_RawBody(t *testing.T) {
	voice := &voiceServiceMock{
		SpeechToTextFunc: func(_ context.Context, audio []byte, mimeType string) (string, error) {
			assert.Equal(t, []byte("audio-blob"), audio)
			assert.Equal(t, "audio/webm", mimeType)
			return "make a landing page", nil
		},
	}
	h := newTestHandler(voiceTestServices(voice))

	req := httptest.NewRequest(http.MethodPost, "/api/voice/stt", strings.NewReader("audio-blob"))
	req.Header.Set("Authorization", "Bearer demo-token")
	req.Header.Set("Content-Type", "audio/webm")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "make a landing page")
}

func TestVoices_Catalog(t *testing.T) {
	voice := &voiceServiceMock{
		VoicesFunc: func(_ context.Context) ([]models.Voice, error) {
			return []models.Voice{{VoiceID: "v-1", Name: "Rachel", Category: "premade"}}, nil
		},
	}
	h := newTestHandler(voiceTestServices(voice))

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, demoRequest(http.MethodGet, "/api/voice/voices", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rachel")
}

func TestVoiceStatus_IsPublic(t *testing.T) {
	voice := &voiceServiceMock{availability: models.VoiceAvailability{TTS: true, STT: false}}
	h := newTestHandler(voiceTestServices(voice))

	// no Authorization header on purpose
	req := httptest.NewRequest(http.MethodGet, "/api/voice/status", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tts":true`)
	assert.Contains(t, rec.Body.String(), `"stt":false`)
}
