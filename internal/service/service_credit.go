// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ai-builder/internal/config"
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/store"
	"github.com/MKhiriev/ai-builder/models"
)

// creditService is the concrete implementation of CreditService. Unmetered
// callers (the demo identity and paid plans) pass through untouched; everyone
// else is debited by the repository's conditional decrement, which is the
// single authority on whether the balance covers the cost.
type creditService struct {
	profiles store.ProfileRepository

	// generationCost is the flat credit price of AI operations.
	generationCost int

	logger *logger.Logger
}

func NewCreditService(profiles store.ProfileRepository, cfg config.Billing, logger *logger.Logger) CreditService {
	return &creditService{
		profiles:       profiles,
		generationCost: cfg.GenerationCost,
		logger:         logger,
	}
}

func (c *creditService) GenerationCost() int { return c.generationCost }

// AuthorizeAndDebit admits or rejects a paid operation.
//
// The demo identity is always admitted without touching storage. For real
// users the profile is read first: a user without a credit profile has no
// balance to spend and is denied like any other shortfall, while storage
// failures fail closed. Pro and enterprise plans are admitted without
// deduction. Free-plan balances are debited atomically; a failed debit
// reports how much was required versus available and leaves the balance
// untouched.
func (c *creditService) AuthorizeAndDebit(ctx context.Context, userID string, cost int) error {
	log := logger.FromContext(ctx)

	if userID == models.DemoUserID || cost <= 0 {
		return nil
	}

	profile, err := c.profiles.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		log.Warn().Str("func", "AuthorizeAndDebit").Str("user_id", userID).Msg("no credit profile, denying operation")
		return fmt.Errorf("%w: no credit balance for user", ErrInsufficientCredits)
	}
	if err != nil {
		log.Err(err).Str("func", "AuthorizeAndDebit").Str("user_id", userID).Msg("profile lookup failed, denying operation")
		return fmt.Errorf("authorize operation: %w", err)
	}

	if profile.Plan == models.PlanPro || profile.Plan == models.PlanEnterprise {
		return nil
	}

	err = c.profiles.DeductCredits(ctx, userID, cost)
	if errors.Is(err, store.ErrInsufficientCredits) || errors.Is(err, store.ErrProfileNotFound) {
		log.Warn().Str("func", "AuthorizeAndDebit").Str("user_id", userID).
			Int("cost", cost).Int("credits", profile.Credits).Msg("operation denied")
		return fmt.Errorf("%w: operation requires %d credits, %d available", ErrInsufficientCredits, cost, profile.Credits)
	}
	if err != nil {
		return fmt.Errorf("debit credits: %w", err)
	}

	return nil
}
