package service

import (
	"github.com/MKhiriev/ai-builder/internal/adapter"
	"github.com/MKhiriev/ai-builder/internal/config"
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/store"
)

// Vendors bundles every outbound capability the services draw on. Fields may
// hold adapters that report themselves unavailable; the services degrade
// accordingly instead of failing at construction.
type Vendors struct {
	// CodeProviders is the ordered fallback chain for code generation.
	CodeProviders []adapter.CodeProvider

	// Editor is the provider used for improve/explain, which are not part of
	// the fallback chain.
	Editor adapter.CodeProvider

	// ImageProviders is the preference-ordered image vendor list.
	ImageProviders []adapter.ImageProvider

	Synthesizer adapter.SpeechSynthesizer
	Recognizer  adapter.SpeechRecognizer

	Auth adapter.AuthProvider
}

type Services struct {
	Auth       AuthService
	Credits    CreditService
	Generation GenerationService
	Images     ImageService
	Voice      VoiceService
	Projects   ProjectService
}

func NewServices(storages *store.Storages, vendors Vendors, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		Auth:       NewAuthService(vendors.Auth, storages.Profiles, cfg.App, cfg.Billing, logger),
		Credits:    NewCreditService(storages.Profiles, cfg.Billing, logger),
		Generation: NewGenerationService(vendors.CodeProviders, vendors.Editor, logger),
		Images:     NewImageService(vendors.ImageProviders, logger),
		Voice:      NewVoiceService(vendors.Synthesizer, vendors.Recognizer, logger),
		Projects:   NewProjectService(storages, cfg.Billing, logger),
	}
}
