package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	huggingFaceBaseURL = "https://api-inference.huggingface.co"
	huggingFaceModel   = "/models/stabilityai/stable-diffusion-xl-base-1.0"

	// ProviderHuggingFace names the fallback image vendor in results.
	ProviderHuggingFace = "huggingface"
)

type huggingFaceProvider struct {
	client *resty.Client
	apiKey string
}

// NewHuggingFaceProvider returns an [ImageProvider] backed by the Hugging Face
// inference API running the SDXL base model. It serves as the fallback behind
// Stability.
func NewHuggingFaceProvider(apiKey string, timeout time.Duration) ImageProvider {
	cli := resty.New().
		SetBaseURL(huggingFaceBaseURL).
		SetTimeout(timeout)

	return &huggingFaceProvider{client: cli, apiKey: apiKey}
}

func (p *huggingFaceProvider) Name() string { return ProviderHuggingFace }

func (p *huggingFaceProvider) Available() bool { return p.apiKey != "" }

func (p *huggingFaceProvider) GenerateImage(ctx context.Context, prompt, style string) (string, error) {
	if !p.Available() {
		return "", fmt.Errorf("%s: %w", ProviderHuggingFace, ErrProviderUnavailable)
	}

	// the inference API has no style parameter, so the style rides on the prompt
	if style != "" {
		prompt = fmt.Sprintf("%s, %s style", prompt, style)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"inputs": prompt}).
		Post(huggingFaceModel)
	if err != nil {
		return "", fmt.Errorf("huggingface request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("huggingface: %w", err)
	}

	// the API answers with raw image bytes
	return base64.StdEncoding.EncodeToString(resp.Body()), nil
}
