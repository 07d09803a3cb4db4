package adapter

import "errors"

// Sentinel errors surfaced by vendor adapters. Matched with [errors.Is].
var (
	// ErrProviderUnavailable is returned by any adapter method when the
	// vendor's API key is not configured.
	ErrProviderUnavailable = errors.New("provider is not configured")

	// ErrEmailAlreadyRegistered is returned by SignUp when the identity
	// service already holds an account for the email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned by SignIn when the email/password
	// pair is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrVerificationRequired is returned when an account exists but the
	// identity service refuses sign-in until the email is confirmed.
	ErrVerificationRequired = errors.New("email verification required")
)

// Transport-level sentinels mapped from vendor HTTP status codes.
var (
	ErrBadRequest   = errors.New("vendor rejected request")
	ErrUnauthorized = errors.New("vendor rejected credentials")
	ErrNotFound     = errors.New("vendor resource not found")
	ErrRateLimited  = errors.New("vendor rate limit exceeded")
	ErrVendorServer = errors.New("vendor server error")
)
