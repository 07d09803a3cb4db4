// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/utils"
	"github.com/MKhiriev/ai-builder/models"
)

// demoBearerToken is the literal token that maps a request onto the shared
// demo identity without any JWT parsing.
const demoBearerToken = "demo-token"

// auth enforces bearer authentication on private routes.
//
// A missing "Authorization" header is rejected with 401; a malformed,
// expired, or otherwise invalid token with 403. The literal demo token maps
// the request onto the demo identity. On success the authenticated user id
// (and email, when present) is stored in the request context for downstream
// handlers.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			_, _ = utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), "", http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			_, _ = utils.WriteError(w, err.Error(), "", http.StatusForbidden)
			return
		}

		ctx := r.Context()

		if tokenString == demoBearerToken {
			ctx = context.WithValue(ctx, utils.UserIDCtxKey, models.DemoUserID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		token, err := h.services.Auth.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			_, _ = utils.WriteError(w, "invalid or expired token", "", http.StatusForbidden)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		if token.Email != "" {
			ctx = context.WithValue(ctx, utils.EmailCtxKey, token.Email)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
