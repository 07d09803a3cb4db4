package service

import (
	"context"

	"github.com/MKhiriev/ai-builder/models"
)

type AuthService interface {
	// Register creates an identity with the external auth provider, inserts
	// the starter profile, and issues a session token.
	Register(ctx context.Context, email, password, name string) (models.User, models.Token, error)

	// Login verifies credentials with the auth provider and issues a session
	// token for the existing profile.
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)

	// ParseToken verifies a bearer token's signature and issuer and returns
	// the parsed token with its subject.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CreditService is the ledger gate in front of every paid operation.
type CreditService interface {
	// AuthorizeAndDebit returns nil when the user may run an operation of the
	// given cost, debiting metered plans in the same step. There is no refund
	// path: a deduction stands even if the operation fails afterwards.
	AuthorizeAndDebit(ctx context.Context, userID string, cost int) error

	// GenerationCost reports the flat credit price of AI operations.
	GenerationCost() int
}

type GenerationService interface {
	Generate(ctx context.Context, req models.GenerationRequest) (models.GenerationResult, error)
	Improve(ctx context.Context, code, instructions string) (models.GenerationResult, error)
	Explain(ctx context.Context, code string) (string, error)

	// Available reports whether at least one code provider is configured.
	Available() bool
}

type ImageService interface {
	// Generate renders prompt through the pinned provider, or through the
	// preference-ordered chain with fallback when no pin is given.
	Generate(ctx context.Context, prompt, style, provider string) (models.ImageResult, error)

	// Styles returns the static style catalog.
	Styles() []models.ImageStyle

	Available() bool
}

type VoiceService interface {
	TextToSpeech(ctx context.Context, text, voiceID string) ([]byte, error)
	SpeechToText(ctx context.Context, audio []byte, mimeType string) (string, error)
	Voices(ctx context.Context) ([]models.Voice, error)
	Availability() models.VoiceAvailability
}

type ProjectService interface {
	Create(ctx context.Context, userID string, project models.Project) (models.Project, error)
	Get(ctx context.Context, userID, projectID string) (models.Project, error)
	List(ctx context.Context, userID string) ([]models.Project, error)
	Update(ctx context.Context, userID, projectID string, update models.ProjectUpdate) (models.Project, error)
	Delete(ctx context.Context, userID, projectID string) error
}
