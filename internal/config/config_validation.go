// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values applied by applyDefaults when no configuration source set
// a field. Pricing defaults: every billable AI operation costs 2 credits,
// free-tier users own at most 2 projects and start with 10 credits.
const (
	defaultHTTPAddress    = "0.0.0.0:8080"
	defaultTokenIssuer    = "ai-builder"
	defaultTokenDuration  = 168 * time.Hour // 7 days
	defaultRequestTimeout = 2 * time.Minute
	defaultLLMTimeout     = 60 * time.Second
	defaultVendorTimeout  = 15 * time.Second

	defaultGenerationCost   = 2
	defaultFreeProjectLimit = 2
	defaultStarterCredits   = 10
)

// applyDefaults fills zero-valued fields of the merged configuration with
// the package defaults above. Secrets (sign key, vendor API keys, DSN) have
// no defaults: an absent credential means the capability is unconfigured.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Providers.LLMTimeout == 0 {
		cfg.Providers.LLMTimeout = defaultLLMTimeout
	}
	if cfg.Providers.VendorTimeout == 0 {
		cfg.Providers.VendorTimeout = defaultVendorTimeout
	}
	if cfg.Billing.GenerationCost == 0 {
		cfg.Billing.GenerationCost = defaultGenerationCost
	}
	if cfg.Billing.FreeProjectLimit == 0 {
		cfg.Billing.FreeProjectLimit = defaultFreeProjectLimit
	}
	if cfg.Billing.StarterCredits == 0 {
		cfg.Billing.StarterCredits = defaultStarterCredits
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
