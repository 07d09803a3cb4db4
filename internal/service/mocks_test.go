package service

import (
	"context"

	"github.com/MKhiriev/ai-builder/internal/adapter"
	"github.com/MKhiriev/ai-builder/models"
)

// ───────────────────────────── store mocks ─────────────────────────────

type profileRepositoryMock struct {
	CreateProfileFunc func(ctx context.Context, user models.User) (models.User, error)
	GetProfileFunc    func(ctx context.Context, userID string) (models.User, error)
	DeductCreditsFunc func(ctx context.Context, userID string, cost int) error
}

func (m *profileRepositoryMock) CreateProfile(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateProfileFunc(ctx, user)
}

func (m *profileRepositoryMock) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return m.GetProfileFunc(ctx, userID)
}

func (m *profileRepositoryMock) DeductCredits(ctx context.Context, userID string, cost int) error {
	return m.DeductCreditsFunc(ctx, userID, cost)
}

type projectRepositoryMock struct {
	CreateProjectFunc func(ctx context.Context, project models.Project) (models.Project, error)
	GetProjectFunc    func(ctx context.Context, userID, projectID string) (models.Project, error)
	ListProjectsFunc  func(ctx context.Context, userID string) ([]models.Project, error)
	UpdateProjectFunc func(ctx context.Context, userID, projectID string, update models.ProjectUpdate) (models.Project, error)
	DeleteProjectFunc func(ctx context.Context, userID, projectID string) error
	CountProjectsFunc func(ctx context.Context, userID string) (int, error)
}

func (m *projectRepositoryMock) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	return m.CreateProjectFunc(ctx, project)
}

func (m *projectRepositoryMock) GetProject(ctx context.Context, userID, projectID string) (models.Project, error) {
	return m.GetProjectFunc(ctx, userID, projectID)
}

func (m *projectRepositoryMock) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return m.ListProjectsFunc(ctx, userID)
}

func (m *projectRepositoryMock) UpdateProject(ctx context.Context, userID, projectID string, update models.ProjectUpdate) (models.Project, error) {
	return m.UpdateProjectFunc(ctx, userID, projectID, update)
}

func (m *projectRepositoryMock) DeleteProject(ctx context.Context, userID, projectID string) error {
	return m.DeleteProjectFunc(ctx, userID, projectID)
}

func (m *projectRepositoryMock) CountProjects(ctx context.Context, userID string) (int, error) {
	return m.CountProjectsFunc(ctx, userID)
}

// ───────────────────────────── adapter mocks ─────────────────────────────

type codeProviderMock struct {
	name         string
	available    bool
	CompleteFunc func(ctx context.Context, params adapter.CompletionParams) (string, int, error)
}

func (m *codeProviderMock) Name() string    { return m.name }
func (m *codeProviderMock) Available() bool { return m.available }

func (m *codeProviderMock) Complete(ctx context.Context, params adapter.CompletionParams) (string, int, error) {
	return m.CompleteFunc(ctx, params)
}

type imageProviderMock struct {
	name              string
	available         bool
	GenerateImageFunc func(ctx context.Context, prompt, style string) (string, error)
}

func (m *imageProviderMock) Name() string    { return m.name }
func (m *imageProviderMock) Available() bool { return m.available }

func (m *imageProviderMock) GenerateImage(ctx context.Context, prompt, style string) (string, error) {
	return m.GenerateImageFunc(ctx, prompt, style)
}

type synthesizerMock struct {
	available      bool
	SynthesizeFunc func(ctx context.Context, text, voiceID string) ([]byte, error)
	VoicesFunc     func(ctx context.Context) ([]models.Voice, error)
}

func (m *synthesizerMock) Available() bool { return m.available }

func (m *synthesizerMock) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	return m.SynthesizeFunc(ctx, text, voiceID)
}

func (m *synthesizerMock) Voices(ctx context.Context) ([]models.Voice, error) {
	return m.VoicesFunc(ctx)
}

type recognizerMock struct {
	available      bool
	TranscribeFunc func(ctx context.Context, audio []byte, contentType string) (string, error)
}

func (m *recognizerMock) Available() bool { return m.available }

func (m *recognizerMock) Transcribe(ctx context.Context, audio []byte, contentType string) (string, error) {
	return m.TranscribeFunc(ctx, audio, contentType)
}

type authProviderMock struct {
	SignUpFunc func(ctx context.Context, email, password string) (adapter.Identity, error)
	SignInFunc func(ctx context.Context, email, password string) (adapter.Identity, error)
}

func (m *authProviderMock) SignUp(ctx context.Context, email, password string) (adapter.Identity, error) {
	return m.SignUpFunc(ctx, email, password)
}

func (m *authProviderMock) SignIn(ctx context.Context, email, password string) (adapter.Identity, error) {
	return m.SignInFunc(ctx, email, password)
}
