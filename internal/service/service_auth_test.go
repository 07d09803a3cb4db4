package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/ai-builder/internal/adapter"
	"github.com/MKhiriev/ai-builder/internal/config"
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/store"
	"github.com/MKhiriev/ai-builder/internal/utils"
	"github.com/MKhiriev/ai-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "ai-builder",
	TokenDuration: time.Hour,
}

func newAuthService(provider adapter.AuthProvider, profiles store.ProfileRepository) AuthService {
	return NewAuthService(provider, profiles, testAppConfig, config.Billing{StarterCredits: 10}, logger.Nop())
}

func TestRegister_CreatesProfileWithStarterCredits(t *testing.T) {
	provider := &authProviderMock{
		SignUpFunc: func(_ context.Context, email, _ string) (adapter.Identity, error) {
			return adapter.Identity{UserID: "u-1", Email: email}, nil
		},
	}

	var stored models.User
	profiles := &profileRepositoryMock{
		CreateProfileFunc: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			return user, nil
		},
	}

	user, token, err := newAuthService(provider, profiles).Register(context.Background(), "ada@example.com", "secret", "Ada")
	require.NoError(t, err)

	assert.Equal(t, models.PlanFree, stored.Plan)
	assert.Equal(t, 10, stored.Credits)
	assert.Equal(t, "Ada", stored.Name)
	assert.Equal(t, "u-1", user.UserID)
	assert.NotEmpty(t, token.SignedString)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	provider := &authProviderMock{
		SignUpFunc: func(_ context.Context, _, _ string) (adapter.Identity, error) {
			return adapter.Identity{}, adapter.ErrEmailAlreadyRegistered
		},
	}

	_, _, err := newAuthService(provider, nil).Register(context.Background(), "ada@example.com", "secret", "")
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegister_VerificationPending(t *testing.T) {
	provider := &authProviderMock{
		SignUpFunc: func(_ context.Context, _, _ string) (adapter.Identity, error) {
			return adapter.Identity{}, adapter.ErrVerificationRequired
		},
	}

	_, _, err := newAuthService(provider, nil).Register(context.Background(), "ada@example.com", "secret", "")
	assert.ErrorIs(t, err, ErrVerificationRequired)
}

func TestRegister_ProfileRaceFallsBackToExisting(t *testing.T) {
	provider := &authProviderMock{
		SignUpFunc: func(_ context.Context, email, _ string) (adapter.Identity, error) {
			return adapter.Identity{UserID: "u-1", Email: email}, nil
		},
	}
	existing := models.User{UserID: "u-1", Email: "ada@example.com", Plan: models.PlanFree, Credits: 4}
	profiles := &profileRepositoryMock{
		CreateProfileFunc: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrProfileAlreadyExists
		},
		GetProfileFunc: func(_ context.Context, _ string) (models.User, error) {
			return existing, nil
		},
	}

	user, _, err := newAuthService(provider, profiles).Register(context.Background(), "ada@example.com", "secret", "")
	require.NoError(t, err)
	assert.Equal(t, 4, user.Credits)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	provider := &authProviderMock{
		SignInFunc: func(_ context.Context, email, _ string) (adapter.Identity, error) {
			return adapter.Identity{UserID: "u-1", Email: email}, nil
		},
	}
	profiles := &profileRepositoryMock{
		GetProfileFunc: func(_ context.Context, userID string) (models.User, error) {
			return models.User{UserID: userID, Email: "ada@example.com", Plan: models.PlanFree}, nil
		},
	}

	svc := newAuthService(provider, profiles)

	_, token, err := svc.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
	assert.Equal(t, "ada@example.com", parsed.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	provider := &authProviderMock{
		SignInFunc: func(_ context.Context, _, _ string) (adapter.Identity, error) {
			return adapter.Identity{}, adapter.ErrInvalidCredentials
		},
	}

	_, _, err := newAuthService(provider, nil).Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RecreatesMissingProfile(t *testing.T) {
	provider := &authProviderMock{
		SignInFunc: func(_ context.Context, email, _ string) (adapter.Identity, error) {
			return adapter.Identity{UserID: "u-1", Email: email}, nil
		},
	}
	created := false
	profiles := &profileRepositoryMock{
		GetProfileFunc: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrProfileNotFound
		},
		CreateProfileFunc: func(_ context.Context, user models.User) (models.User, error) {
			created = true
			return user, nil
		},
	}

	user, _, err := newAuthService(provider, profiles).Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 10, user.Credits)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	// a negative duration yields a token that is expired on arrival
	token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "u-1", "ada@example.com", -time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = newAuthService(nil, nil).ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_RejectsForeignSignature(t *testing.T) {
	token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "u-1", "ada@example.com", time.Hour, "other-key")
	require.NoError(t, err)

	verifier := newAuthService(nil, nil)

	_, err = verifier.ParseToken(context.Background(), token.SignedString)
	assert.Error(t, err)

	_, err = verifier.ParseToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
