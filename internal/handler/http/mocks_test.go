package http

import (
	"context"

	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/service"
	"github.com/MKhiriev/ai-builder/models"
)

// ───────────────────────────── service mocks ─────────────────────────────

type authServiceMock struct {
	RegisterFunc   func(ctx context.Context, email, password, name string) (models.User, models.Token, error)
	LoginFunc      func(ctx context.Context, email, password string) (models.User, models.Token, error)
	ParseTokenFunc func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *authServiceMock) Register(ctx context.Context, email, password, name string) (models.User, models.Token, error) {
	return m.RegisterFunc(ctx, email, password, name)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *authServiceMock) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.ParseTokenFunc(ctx, tokenString)
}

type creditServiceMock struct {
	AuthorizeAndDebitFunc func(ctx context.Context, userID string, cost int) error
	cost                  int
}

func (m *creditServiceMock) AuthorizeAndDebit(ctx context.Context, userID string, cost int) error {
	return m.AuthorizeAndDebitFunc(ctx, userID, cost)
}

func (m *creditServiceMock) GenerationCost() int {
	if m.cost == 0 {
		return 2
	}
	return m.cost
}

type generationServiceMock struct {
	GenerateFunc func(ctx context.Context, req models.GenerationRequest) (models.GenerationResult, error)
	ImproveFunc  func(ctx context.Context, code, instructions string) (models.GenerationResult, error)
	ExplainFunc  func(ctx context.Context, code string) (string, error)
	available    bool
}

func (m *generationServiceMock) Generate(ctx context.Context, req models.GenerationRequest) (models.GenerationResult, error) {
	return m.GenerateFunc(ctx, req)
}

func (m *generationServiceMock) Improve(ctx context.Context, code, instructions string) (models.GenerationResult, error) {
	return m.ImproveFunc(ctx, code, instructions)
}

func (m *generationServiceMock) Explain(ctx context.Context, code string) (string, error) {
	return m.ExplainFunc(ctx, code)
}

func (m *generationServiceMock) Available() bool { return m.available }

type imageServiceMock struct {
	GenerateFunc func(ctx context.Context, prompt, style, provider string) (models.ImageResult, error)
	StylesFunc   func() []models.ImageStyle
	available    bool
}

func (m *imageServiceMock) Generate(ctx context.Context, prompt, style, provider string) (models.ImageResult, error) {
	return m.GenerateFunc(ctx, prompt, style, provider)
}

func (m *imageServiceMock) Styles() []models.ImageStyle {
	if m.StylesFunc != nil {
		return m.StylesFunc()
	}
	return nil
}

func (m *imageServiceMock) Available() bool { return m.available }

type voiceServiceMock struct {
	TextToSpeechFunc func(ctx context.Context, text, voiceID string) ([]byte, error)
	SpeechToTextFunc func(ctx context.Context, audio []byte, mimeType string) (string, error)
	VoicesFunc       func(ctx context.Context) ([]models.Voice, error)
	availability     models.VoiceAvailability
}

func (m *voiceServiceMock) TextToSpeech(ctx context.Context, text, voiceID string) ([]byte, error) {
	return m.TextToSpeechFunc(ctx, text, voiceID)
}

func (m *voiceServiceMock) SpeechToText(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return m.SpeechToTextFunc(ctx, audio, mimeType)
}

func (m *voiceServiceMock) Voices(ctx context.Context) ([]models.Voice, error) {
	return m.VoicesFunc(ctx)
}

func (m *voiceServiceMock) Availability() models.VoiceAvailability { return m.availability }

type projectServiceMock struct {
	CreateFunc func(ctx context.Context, userID string, project models.Project) (models.Project, error)
	GetFunc    func(ctx context.Context, userID, projectID string) (models.Project, error)
	ListFunc   func(ctx context.Context, userID string) ([]models.Project, error)
	UpdateFunc func(ctx context.Context, userID, projectID string, update models.ProjectUpdate) (models.Project, error)
	DeleteFunc func(ctx context.Context, userID, projectID string) error
}

func (m *projectServiceMock) Create(ctx context.Context, userID string, project models.Project) (models.Project, error) {
	return m.CreateFunc(ctx, userID, project)
}

func (m *projectServiceMock) Get(ctx context.Context, userID, projectID string) (models.Project, error) {
	return m.GetFunc(ctx, userID, projectID)
}

func (m *projectServiceMock) List(ctx context.Context, userID string) ([]models.Project, error) {
	return m.ListFunc(ctx, userID)
}

func (m *projectServiceMock) Update(ctx context.Context, userID, projectID string, update models.ProjectUpdate) (models.Project, error) {
	return m.UpdateFunc(ctx, userID, projectID, update)
}

func (m *projectServiceMock) Delete(ctx context.Context, userID, projectID string) error {
	return m.DeleteFunc(ctx, userID, projectID)
}

// allowAllCredits is the ledger mock for tests not exercising billing.
func allowAllCredits() *creditServiceMock {
	return &creditServiceMock{
		AuthorizeAndDebitFunc: func(_ context.Context, _ string, _ int) error { return nil },
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}
