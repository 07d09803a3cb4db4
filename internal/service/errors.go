package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers a rejected email/password pair on sign-in.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyRegistered covers a sign-up for a taken email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrVerificationRequired covers an account that exists but must confirm
	// its email before signing in.
	ErrVerificationRequired = errors.New("email verification required")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrInsufficientCredits is returned when a paid operation is requested
	// with a balance below its cost. The wrapped message carries the required
	// and available amounts for the response body.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrProjectLimitReached is returned when a free-plan or demo user tries
	// to create a project beyond their cap.
	ErrProjectLimitReached = errors.New("project limit reached")

	// ErrGenerationUnavailable means no code provider is configured at all.
	ErrGenerationUnavailable = errors.New("no code generation provider is configured")

	// ErrGenerationFailed means every provider in the fallback chain failed.
	ErrGenerationFailed = errors.New("code generation failed")

	// ErrImageUnavailable means no image provider is configured.
	ErrImageUnavailable = errors.New("no image generation provider is configured")

	// ErrImageFailed means every image provider failed.
	ErrImageFailed = errors.New("image generation failed")

	// ErrVoiceUnavailable means the requested speech capability has no
	// configured vendor.
	ErrVoiceUnavailable = errors.New("voice service is not configured")
)
