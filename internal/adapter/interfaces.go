// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter wraps the external vendors the application depends on:
// LLM completion APIs, image generation APIs, speech vendors, and the
// authentication provider.
//
// Each vendor hides behind a small interface so the service layer can compose
// fallback chains without knowing which vendor it is talking to. An adapter
// built without an API key reports Available() == false and fails fast with
// [ErrProviderUnavailable]; the service layer skips unavailable providers when
// assembling its chains.
//
// Error values defined in errors.go are mapped from vendor HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] for vendor-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/ai-builder/models"
)

// CompletionParams carries one LLM completion request: a system prompt that
// sets the contract, the user prompt, and sampling knobs.
type CompletionParams struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// CodeProvider is a single LLM vendor capable of text completion. The service
// layer arranges providers into an ordered fallback chain.
type CodeProvider interface {
	// Name identifies the vendor in results and logs ("openai", "groq").
	Name() string

	// Available reports whether the provider is configured with credentials.
	Available() bool

	// Complete runs one completion and returns the raw model output plus the
	// total token usage reported by the vendor (0 when not reported).
	Complete(ctx context.Context, params CompletionParams) (string, int, error)
}

// ImageProvider is a single image generation vendor.
type ImageProvider interface {
	Name() string
	Available() bool

	// GenerateImage renders prompt in the given style and returns the result
	// as base64-encoded PNG data.
	GenerateImage(ctx context.Context, prompt, style string) (string, error)
}

// SpeechSynthesizer converts text to spoken audio.
type SpeechSynthesizer interface {
	Available() bool

	// Synthesize returns MP3 audio for the given text. An empty voiceID
	// selects the vendor's default voice.
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)

	// Voices lists the voices the vendor offers.
	Voices(ctx context.Context) ([]models.Voice, error)
}

// SpeechRecognizer converts spoken audio to text.
type SpeechRecognizer interface {
	Available() bool

	// Transcribe returns the transcript of the given audio payload.
	Transcribe(ctx context.Context, audio []byte, contentType string) (string, error)
}

// Identity is the authenticated principal returned by the auth provider.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// AuthProvider verifies user credentials against the external identity
// service. Session tokens are minted locally; the provider only vouches for
// who the user is.
type AuthProvider interface {
	// SignUp registers a new identity. Returns ErrEmailAlreadyRegistered when
	// the email is taken and ErrVerificationRequired when the identity exists
	// but cannot sign in until the email is confirmed.
	SignUp(ctx context.Context, email, password string) (Identity, error)

	// SignIn checks the credentials. Returns ErrInvalidCredentials when they
	// do not match a confirmed identity.
	SignIn(ctx context.Context, email, password string) (Identity, error)
}
