// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type gotrueProvider struct {
	client *resty.Client
	apiKey string
}

// NewGoTrueProvider returns an [AuthProvider] backed by a GoTrue-compatible
// identity service (Supabase Auth exposes this API). baseURL points at the
// auth endpoint root, apiKey is the service's public API key.
func NewGoTrueProvider(baseURL, apiKey string, timeout time.Duration) AuthProvider {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &gotrueProvider{client: cli, apiKey: apiKey}
}

func (p *gotrueProvider) available() bool {
	return p.client.BaseURL != "" && p.apiKey != ""
}

type gotrueCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

type gotrueSignUpResponse struct {
	gotrueUser
	ConfirmationSentAt string `json:"confirmation_sent_at"`
}

type gotrueTokenResponse struct {
	AccessToken string     `json:"access_token"`
	User        gotrueUser `json:"user"`
}

type gotrueErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e gotrueErrorResponse) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (p *gotrueProvider) SignUp(ctx context.Context, email, password string) (Identity, error) {
	if !p.available() {
		return Identity{}, fmt.Errorf("auth provider: %w", ErrProviderUnavailable)
	}

	var result gotrueSignUpResponse
	var apiErr gotrueErrorResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("apikey", p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(gotrueCredentials{Email: email, Password: password}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/signup")
	if err != nil {
		return Identity{}, fmt.Errorf("auth signup request: %w", err)
	}

	if resp.IsError() {
		msg := strings.ToLower(apiErr.text())
		if resp.StatusCode() == http.StatusUnprocessableEntity ||
			strings.Contains(msg, "already registered") || strings.Contains(msg, "already exists") {
			return Identity{}, ErrEmailAlreadyRegistered
		}
		return Identity{}, fmt.Errorf("auth signup: %w", mapHTTPError(resp))
	}

	// GoTrue answers a signup with confirmation pending with an obfuscated
	// user object; the account cannot sign in until the email is confirmed.
	if result.ConfirmationSentAt != "" {
		return Identity{}, ErrVerificationRequired
	}
	if result.ID == "" {
		return Identity{}, fmt.Errorf("auth signup: response carries no user id")
	}

	return Identity{UserID: result.ID, Email: result.Email, Name: result.UserMetadata.Name}, nil
}

func (p *gotrueProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	if !p.available() {
		return Identity{}, fmt.Errorf("auth provider: %w", ErrProviderUnavailable)
	}

	var result gotrueTokenResponse
	var apiErr gotrueErrorResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("apikey", p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(gotrueCredentials{Email: email, Password: password}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/token")
	if err != nil {
		return Identity{}, fmt.Errorf("auth signin request: %w", err)
	}

	if resp.IsError() {
		msg := strings.ToLower(apiErr.text())
		switch {
		case strings.Contains(msg, "not confirmed"):
			return Identity{}, ErrVerificationRequired
		case resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusUnauthorized:
			return Identity{}, ErrInvalidCredentials
		default:
			return Identity{}, fmt.Errorf("auth signin: %w", mapHTTPError(resp))
		}
	}

	user := result.User
	if user.ID == "" {
		return Identity{}, fmt.Errorf("auth signin: response carries no user id")
	}

	return Identity{UserID: user.ID, Email: user.Email, Name: user.UserMetadata.Name}, nil
}
