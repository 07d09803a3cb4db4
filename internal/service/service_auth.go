// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ai-builder/internal/adapter"
	"github.com/MKhiriev/ai-builder/internal/config"
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/store"
	"github.com/MKhiriev/ai-builder/internal/utils"
	"github.com/MKhiriev/ai-builder/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService. Credential
// verification is delegated to the external auth provider; this service owns
// the local profile row and the session JWT lifecycle.
type authService struct {
	provider adapter.AuthProvider
	profiles store.ProfileRepository

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// starterCredits is the balance a fresh free-plan profile begins with.
	starterCredits int

	logger *logger.Logger
}

func NewAuthService(provider adapter.AuthProvider, profiles store.ProfileRepository, app config.App, billing config.Billing, logger *logger.Logger) AuthService {
	return &authService{
		provider:       provider,
		profiles:       profiles,
		tokenSignKey:   app.TokenSignKey,
		tokenIssuer:    app.TokenIssuer,
		tokenDuration:  app.TokenDuration,
		starterCredits: billing.StarterCredits,
		logger:         logger,
	}
}

// Register creates an identity with the auth provider, inserts the local
// profile with starter credits, and issues a session token.
//
// Returns ErrEmailAlreadyRegistered for a taken email and
// ErrVerificationRequired when the provider withholds the identity until the
// email is confirmed.
func (a *authService) Register(ctx context.Context, email, password, name string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, models.Token{}, fmt.Errorf("%w: email and password are required", ErrInvalidDataProvided)
	}

	identity, err := a.provider.SignUp(ctx, email, password)
	if err != nil {
		return models.User{}, models.Token{}, mapProviderError(err)
	}

	if name == "" {
		name = identity.Name
	}
	user, err := a.ensureProfile(ctx, identity, name)
	if err != nil {
		log.Err(err).Str("func", "Register").Msg("profile creation failed")
		return models.User{}, models.Token{}, fmt.Errorf("register: %w", err)
	}

	token, err := a.issueToken(user)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("register: %w", err)
	}

	return user, token, nil
}

// Login verifies the credentials with the auth provider and issues a session
// token. A missing profile row is recreated on the spot so accounts predating
// the profiles table can still sign in.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, models.Token{}, fmt.Errorf("%w: email and password are required", ErrInvalidDataProvided)
	}

	identity, err := a.provider.SignIn(ctx, email, password)
	if err != nil {
		return models.User{}, models.Token{}, mapProviderError(err)
	}

	user, err := a.profiles.GetProfile(ctx, identity.UserID)
	if errors.Is(err, store.ErrProfileNotFound) {
		user, err = a.ensureProfile(ctx, identity, identity.Name)
	}
	if err != nil {
		log.Err(err).Str("func", "Login").Msg("profile lookup failed")
		return models.User{}, models.Token{}, fmt.Errorf("login: %w", err)
	}

	token, err := a.issueToken(user)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("login: %w", err)
	}

	return user, token, nil
}

// ParseToken verifies the signature and issuer of a session token.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}

	return token, nil
}

func (a *authService) ensureProfile(ctx context.Context, identity adapter.Identity, name string) (models.User, error) {
	user, err := a.profiles.CreateProfile(ctx, models.User{
		UserID:  identity.UserID,
		Email:   identity.Email,
		Name:    name,
		Plan:    models.PlanFree,
		Credits: a.starterCredits,
	})
	if errors.Is(err, store.ErrProfileAlreadyExists) {
		// lost a creation race; the existing row wins
		return a.profiles.GetProfile(ctx, identity.UserID)
	}

	return user, err
}

func (a *authService) issueToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

func mapProviderError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrEmailAlreadyRegistered):
		return ErrEmailAlreadyRegistered
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, adapter.ErrVerificationRequired):
		return ErrVerificationRequired
	default:
		return fmt.Errorf("auth provider: %w", err)
	}
}
