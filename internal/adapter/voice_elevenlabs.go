package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ai-builder/models"
	"github.com/go-resty/resty/v2"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io"

	defaultVoiceID  = "21m00Tcm4TlvDq8ikWAM" // Rachel
	elevenLabsModel = "eleven_monolingual_v1"
	voiceStability  = 0.5
	voiceSimilarity = 0.75
)

type elevenLabsSynthesizer struct {
	client *resty.Client
	apiKey string
}

// NewElevenLabsSynthesizer returns a [SpeechSynthesizer] backed by the
// ElevenLabs text-to-speech API.
func NewElevenLabsSynthesizer(apiKey string, timeout time.Duration) SpeechSynthesizer {
	cli := resty.New().
		SetBaseURL(elevenLabsBaseURL).
		SetTimeout(timeout)

	return &elevenLabsSynthesizer{client: cli, apiKey: apiKey}
}

func (s *elevenLabsSynthesizer) Available() bool { return s.apiKey != "" }

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsTTSRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

func (s *elevenLabsSynthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if !s.Available() {
		return nil, fmt.Errorf("elevenlabs: %w", ErrProviderUnavailable)
	}
	if voiceID == "" {
		voiceID = defaultVoiceID
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("xi-api-key", s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "audio/mpeg").
		SetBody(elevenLabsTTSRequest{
			Text:    text,
			ModelID: elevenLabsModel,
			VoiceSettings: elevenLabsVoiceSettings{
				Stability:       voiceStability,
				SimilarityBoost: voiceSimilarity,
			},
		}).
		Post("/v1/text-to-speech/" + voiceID)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("elevenlabs: %w", err)
	}

	return resp.Body(), nil
}

type elevenLabsVoicesResponse struct {
	Voices []struct {
		VoiceID  string `json:"voice_id"`
		Name     string `json:"name"`
		Category string `json:"category"`
	} `json:"voices"`
}

func (s *elevenLabsSynthesizer) Voices(ctx context.Context) ([]models.Voice, error) {
	if !s.Available() {
		return nil, fmt.Errorf("elevenlabs: %w", ErrProviderUnavailable)
	}

	var result elevenLabsVoicesResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("xi-api-key", s.apiKey).
		SetResult(&result).
		Get("/v1/voices")
	if err != nil {
		return nil, fmt.Errorf("elevenlabs voices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("elevenlabs voices: %w", err)
	}

	voices := make([]models.Voice, 0, len(result.Voices))
	for _, v := range result.Voices {
		voices = append(voices, models.Voice{
			VoiceID:  v.VoiceID,
			Name:     v.Name,
			Category: v.Category,
		})
	}

	return voices, nil
}
