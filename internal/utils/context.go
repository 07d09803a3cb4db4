// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// UUID generation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the user identifier in the context.
// Used together with GetUserIDFromContext for type-safe retrieval
// of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "2f6a…")
var UserIDCtxKey = contextKey("userID")

// EmailCtxKey is the key used to store the authenticated user's email in
// the context, populated by the auth middleware from the token claims.
var EmailCtxKey = contextKey("email")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns an empty string when the value is missing or has an unexpected
// type. Handlers behind the auth middleware may rely on a non-empty result.
//
// Example usage:
//
//	userID := utils.GetUserIDFromContext(ctx)
func GetUserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDCtxKey).(string)
	return userID
}

// GetEmailFromContext retrieves the authenticated user's email from the
// context. Returns an empty string when absent, following the same
// convention as [GetUserIDFromContext].
func GetEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(EmailCtxKey).(string)
	return email
}
