// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "u-42")

	userID := GetUserIDFromContext(ctx)

	if userID != "u-42" {
		t.Errorf("expected userID='u-42', got '%s'", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	userID := GetUserIDFromContext(ctx)

	if userID != "" {
		t.Errorf("expected empty userID, got '%s'", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, 42)

	userID := GetUserIDFromContext(ctx)

	if userID != "" {
		t.Errorf("expected empty userID for wrong type, got '%s'", userID)
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "u-99")

	userID := GetUserIDFromContext(ctx)

	if userID != "" {
		t.Errorf("expected empty userID for different key, got '%s'", userID)
	}
}

func TestGetEmailFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, "ada@example.com")

	email := GetEmailFromContext(ctx)

	if email != "ada@example.com" {
		t.Errorf("expected email='ada@example.com', got '%s'", email)
	}
}

func TestGetEmailFromContext_Missing(t *testing.T) {
	email := GetEmailFromContext(context.Background())

	if email != "" {
		t.Errorf("expected empty email, got '%s'", email)
	}
}
