// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/ai-builder/internal/adapter"
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/models"
)

const (
	generateTemperature = 0.8
	generateMaxTokens   = 6000

	improveTemperature = 0.7
	improveMaxTokens   = 8000

	explainMaxTokens = 1000
)

// generationService runs code generation through an ordered provider chain:
// attempt each configured provider in order, return the first success, and
// surface the last failure when the chain is exhausted. Improve and explain
// run on a single editor provider outside the chain.
type generationService struct {
	chain  []adapter.CodeProvider
	editor adapter.CodeProvider

	logger *logger.Logger
}

func NewGenerationService(chain []adapter.CodeProvider, editor adapter.CodeProvider, logger *logger.Logger) GenerationService {
	return &generationService{
		chain:  chain,
		editor: editor,
		logger: logger,
	}
}

func (g *generationService) Available() bool {
	for _, p := range g.chain {
		if p.Available() {
			return true
		}
	}
	return false
}

func (g *generationService) Generate(ctx context.Context, req models.GenerationRequest) (models.GenerationResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Prompt) == "" {
		return models.GenerationResult{}, fmt.Errorf("%w: prompt is required", ErrInvalidDataProvided)
	}
	projectType := req.Type
	if projectType == "" {
		projectType = models.TypeComponent
	}
	if !projectType.Valid() {
		return models.GenerationResult{}, fmt.Errorf("%w: unknown project type %q", ErrInvalidDataProvided, req.Type)
	}

	params := adapter.CompletionParams{
		System:      buildSystemPrompt(projectType),
		Prompt:      req.Prompt,
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
	}

	var lastErr error
	attempted := false
	for _, provider := range g.chain {
		if !provider.Available() {
			continue
		}
		attempted = true

		raw, tokens, err := provider.Complete(ctx, params)
		if err != nil {
			log.Warn().Str("func", "Generate").Str("provider", provider.Name()).Err(err).Msg("provider failed, trying next")
			lastErr = err
			continue
		}

		return models.GenerationResult{
			Code:       CleanCode(raw),
			Provider:   provider.Name(),
			TokensUsed: tokens,
		}, nil
	}

	if !attempted {
		return models.GenerationResult{}, ErrGenerationUnavailable
	}
	return models.GenerationResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, lastErr)
}

func (g *generationService) Improve(ctx context.Context, code, instructions string) (models.GenerationResult, error) {
	if strings.TrimSpace(code) == "" || strings.TrimSpace(instructions) == "" {
		return models.GenerationResult{}, fmt.Errorf("%w: code and instructions are required", ErrInvalidDataProvided)
	}
	if g.editor == nil || !g.editor.Available() {
		return models.GenerationResult{}, ErrGenerationUnavailable
	}

	raw, tokens, err := g.editor.Complete(ctx, adapter.CompletionParams{
		System:      improveSystemPrompt,
		Prompt:      fmt.Sprintf("Instruction: %s\n\nComponent:\n%s", instructions, code),
		Temperature: improveTemperature,
		MaxTokens:   improveMaxTokens,
	})
	if err != nil {
		return models.GenerationResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return models.GenerationResult{
		Code:       CleanCode(raw),
		Provider:   g.editor.Name(),
		TokensUsed: tokens,
	}, nil
}

func (g *generationService) Explain(ctx context.Context, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("%w: code is required", ErrInvalidDataProvided)
	}
	if g.editor == nil || !g.editor.Available() {
		return "", ErrGenerationUnavailable
	}

	explanation, _, err := g.editor.Complete(ctx, adapter.CompletionParams{
		System:    explainSystemPrompt,
		Prompt:    code,
		MaxTokens: explainMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	// explanations are prose and pass through untouched
	return strings.TrimSpace(explanation), nil
}
