package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/utils"
)

// maxAudioBytes caps the speech-to-text request body.
const maxAudioBytes = 25 << 20 // 25 MiB

// textToSpeech answers with raw MP3 bytes rather than the JSON envelope.
func (h *Handler) textToSpeech(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req ttsRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	audio, err := h.services.Voice.TextToSpeech(ctx, req.Text, req.VoiceID)
	if err != nil {
		log.Err(err).Msg("text-to-speech failed")
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

// speechToText accepts the audio as the raw request body; the Content-Type
// header names the codec.
func (h *Handler) speechToText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	audio, err := io.ReadAll(io.LimitReader(r.Body, maxAudioBytes))
	if err != nil {
		log.Err(err).Msg("reading audio body failed")
		writeServiceError(w, err)
		return
	}

	transcript, err := h.services.Voice.SpeechToText(ctx, audio, r.Header.Get("Content-Type"))
	if err != nil {
		log.Err(err).Msg("speech-to-text failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, map[string]string{"transcript": transcript}, http.StatusOK)
}

func (h *Handler) voices(w http.ResponseWriter, r *http.Request) {
	voices, err := h.services.Voice.Voices(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing voices failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteSuccess(w, voices, http.StatusOK)
}

func (h *Handler) voiceStatus(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteSuccess(w, h.services.Voice.Availability(), http.StatusOK)
}
