package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/ai-builder/internal/adapter"
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/models"
)

// imageStyles is the static catalog offered to clients. IDs double as the
// Stability style preset.
var imageStyles = []models.ImageStyle{
	{ID: "digital-art", Name: "Digital Art"},
	{ID: "photographic", Name: "Photographic"},
	{ID: "3d-model", Name: "3D Model"},
	{ID: "anime", Name: "Anime"},
	{ID: "cinematic", Name: "Cinematic"},
	{ID: "fantasy-art", Name: "Fantasy Art"},
	{ID: "neon-punk", Name: "Neon Punk"},
	{ID: "origami", Name: "Origami"},
	{ID: "pixel-art", Name: "Pixel Art"},
	{ID: "line-art", Name: "Line Art"},
}

// imageService generates images through a preference-ordered vendor list.
// A caller may name a preferred provider, which is tried first; the rest of
// the chain still serves as fallback.
type imageService struct {
	providers []adapter.ImageProvider
	logger    *logger.Logger
}

func NewImageService(providers []adapter.ImageProvider, logger *logger.Logger) ImageService {
	return &imageService{providers: providers, logger: logger}
}

func (s *imageService) Styles() []models.ImageStyle { return imageStyles }

func (s *imageService) Available() bool {
	for _, p := range s.providers {
		if p.Available() {
			return true
		}
	}
	return false
}

func (s *imageService) Generate(ctx context.Context, prompt, style, provider string) (models.ImageResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(prompt) == "" {
		return models.ImageResult{}, fmt.Errorf("%w: prompt is required", ErrInvalidDataProvided)
	}

	var lastErr error
	attempted := false
	for _, p := range s.orderedProviders(provider) {
		if !p.Available() {
			continue
		}
		attempted = true

		result, err := s.generateWith(ctx, p, prompt, style)
		if err != nil {
			log.Warn().Str("func", "Generate").Str("provider", p.Name()).Err(err).Msg("image provider failed, trying next")
			lastErr = err
			continue
		}
		return result, nil
	}

	if !attempted {
		return models.ImageResult{}, ErrImageUnavailable
	}
	return models.ImageResult{}, fmt.Errorf("%w: %v", ErrImageFailed, lastErr)
}

func (s *imageService) generateWith(ctx context.Context, p adapter.ImageProvider, prompt, style string) (models.ImageResult, error) {
	b64, err := p.GenerateImage(ctx, prompt, style)
	if err != nil {
		return models.ImageResult{}, err
	}

	return models.ImageResult{
		Image:    "data:image/png;base64," + b64,
		Provider: p.Name(),
	}, nil
}

// orderedProviders moves the preferred provider to the front of the attempt
// order. An empty or unknown name leaves the configured order untouched.
func (s *imageService) orderedProviders(preferred string) []adapter.ImageProvider {
	if preferred == "" {
		return s.providers
	}

	ordered := make([]adapter.ImageProvider, 0, len(s.providers))
	for _, p := range s.providers {
		if p.Name() == preferred {
			ordered = append(ordered, p)
		}
	}
	for _, p := range s.providers {
		if p.Name() != preferred {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
