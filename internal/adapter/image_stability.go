package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	stabilityBaseURL  = "https://api.stability.ai"
	stabilityEndpoint = "/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"

	// ProviderStability names the primary image vendor in results.
	ProviderStability = "stability"

	defaultStylePreset = "digital-art"
	negativePrompt     = "blurry, bad quality, distorted"
)

type stabilityProvider struct {
	client *resty.Client
	apiKey string
}

// NewStabilityProvider returns an [ImageProvider] backed by the Stability AI
// SDXL text-to-image endpoint.
func NewStabilityProvider(apiKey string, timeout time.Duration) ImageProvider {
	cli := resty.New().
		SetBaseURL(stabilityBaseURL).
		SetTimeout(timeout)

	return &stabilityProvider{client: cli, apiKey: apiKey}
}

func (p *stabilityProvider) Name() string { return ProviderStability }

func (p *stabilityProvider) Available() bool { return p.apiKey != "" }

type stabilityTextPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type stabilityRequest struct {
	TextPrompts []stabilityTextPrompt `json:"text_prompts"`
	CfgScale    int                   `json:"cfg_scale"`
	Height      int                   `json:"height"`
	Width       int                   `json:"width"`
	Steps       int                   `json:"steps"`
	Samples     int                   `json:"samples"`
	StylePreset string                `json:"style_preset"`
}

type stabilityResponse struct {
	Artifacts []struct {
		Base64       string `json:"base64"`
		FinishReason string `json:"finishReason"`
	} `json:"artifacts"`
}

func (p *stabilityProvider) GenerateImage(ctx context.Context, prompt, style string) (string, error) {
	if !p.Available() {
		return "", fmt.Errorf("%s: %w", ProviderStability, ErrProviderUnavailable)
	}
	if style == "" {
		style = defaultStylePreset
	}

	var result stabilityResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(stabilityRequest{
			TextPrompts: []stabilityTextPrompt{
				{Text: prompt, Weight: 1},
				{Text: negativePrompt, Weight: -1},
			},
			CfgScale:    7,
			Height:      1024,
			Width:       1024,
			Steps:       30,
			Samples:     1,
			StylePreset: style,
		}).
		SetResult(&result).
		Post(stabilityEndpoint)
	if err != nil {
		return "", fmt.Errorf("stability request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("stability: %w", err)
	}
	if len(result.Artifacts) == 0 {
		return "", fmt.Errorf("stability: response carries no artifacts")
	}

	return result.Artifacts[0].Base64, nil
}
