package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/ai-builder/internal/adapter"
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/models"
)

// voiceService fronts the speech vendors. Either capability may be
// unconfigured independently of the other.
type voiceService struct {
	synthesizer adapter.SpeechSynthesizer
	recognizer  adapter.SpeechRecognizer
	logger      *logger.Logger
}

func NewVoiceService(synthesizer adapter.SpeechSynthesizer, recognizer adapter.SpeechRecognizer, logger *logger.Logger) VoiceService {
	return &voiceService{
		synthesizer: synthesizer,
		recognizer:  recognizer,
		logger:      logger,
	}
}

func (s *voiceService) Availability() models.VoiceAvailability {
	return models.VoiceAvailability{
		TTS: s.synthesizer != nil && s.synthesizer.Available(),
		STT: s.recognizer != nil && s.recognizer.Available(),
	}
}

func (s *voiceService) TextToSpeech(ctx context.Context, text, voiceID string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidDataProvided)
	}
	if s.synthesizer == nil || !s.synthesizer.Available() {
		return nil, ErrVoiceUnavailable
	}

	audio, err := s.synthesizer.Synthesize(ctx, text, voiceID)
	if err != nil {
		return nil, fmt.Errorf("text to speech: %w", err)
	}

	return audio, nil
}

func (s *voiceService) SpeechToText(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("%w: audio payload is required", ErrInvalidDataProvided)
	}
	if s.recognizer == nil || !s.recognizer.Available() {
		return "", ErrVoiceUnavailable
	}

	transcript, err := s.recognizer.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return "", fmt.Errorf("speech to text: %w", err)
	}

	return transcript, nil
}

// Voices returns the vendor's voice catalog. An unconfigured synthesizer
// yields an empty catalog rather than an error so clients can render an
// empty picker.
func (s *voiceService) Voices(ctx context.Context) ([]models.Voice, error) {
	if s.synthesizer == nil || !s.synthesizer.Available() {
		return []models.Voice{}, nil
	}

	voices, err := s.synthesizer.Voices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}

	return voices, nil
}
