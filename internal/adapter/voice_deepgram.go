package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	deepgramBaseURL = "https://api.deepgram.com"
	deepgramModel   = "nova-2"
)

type deepgramRecognizer struct {
	client *resty.Client
	apiKey string
}

// NewDeepgramRecognizer returns a [SpeechRecognizer] backed by the Deepgram
// pre-recorded transcription API.
func NewDeepgramRecognizer(apiKey string, timeout time.Duration) SpeechRecognizer {
	cli := resty.New().
		SetBaseURL(deepgramBaseURL).
		SetTimeout(timeout)

	return &deepgramRecognizer{client: cli, apiKey: apiKey}
}

func (r *deepgramRecognizer) Available() bool { return r.apiKey != "" }

type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

func (r *deepgramRecognizer) Transcribe(ctx context.Context, audio []byte, contentType string) (string, error) {
	if !r.Available() {
		return "", fmt.Errorf("deepgram: %w", ErrProviderUnavailable)
	}
	if contentType == "" {
		contentType = "audio/wav"
	}

	var result deepgramResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Token "+r.apiKey).
		SetHeader("Content-Type", contentType).
		SetQueryParam("model", deepgramModel).
		SetQueryParam("smart_format", "true").
		SetBody(audio).
		SetResult(&result).
		Post("/v1/listen")
	if err != nil {
		return "", fmt.Errorf("deepgram request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("deepgram: %w", err)
	}

	// best effort: a response without alternatives is an empty transcript,
	// not an error
	channels := result.Results.Channels
	if len(channels) == 0 || len(channels[0].Alternatives) == 0 {
		return "", nil
	}

	return channels[0].Alternatives[0].Transcript, nil
}
