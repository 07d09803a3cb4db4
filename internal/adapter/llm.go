// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"

	// ProviderOpenAI and ProviderGroq are the names completion results carry.
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"

	// Default code generation models per vendor.
	OpenAICodeModel = "gpt-4-turbo-preview"
	GroqCodeModel   = "llama-3.3-70b-versatile"
)

// llmProvider talks to any OpenAI-compatible chat completion endpoint. Groq
// exposes the same wire protocol, so both vendors share this implementation
// and differ only in base URL and model.
type llmProvider struct {
	name   string
	model  string
	client *openai.Client
}

// NewOpenAIProvider returns a [CodeProvider] backed by the OpenAI API. With an
// empty apiKey the provider is constructed but reports itself unavailable.
// The vendor imposes no deadline of its own, so timeout bounds each round trip.
func NewOpenAIProvider(apiKey, model string, timeout time.Duration) CodeProvider {
	p := &llmProvider{name: ProviderOpenAI, model: model}
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		cfg.HTTPClient = &http.Client{Timeout: timeout}
		p.client = openai.NewClientWithConfig(cfg)
	}
	return p
}

// NewGroqProvider returns a [CodeProvider] backed by Groq's OpenAI-compatible
// endpoint.
func NewGroqProvider(apiKey, model string, timeout time.Duration) CodeProvider {
	p := &llmProvider{name: ProviderGroq, model: model}
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		cfg.BaseURL = groqBaseURL
		cfg.HTTPClient = &http.Client{Timeout: timeout}
		p.client = openai.NewClientWithConfig(cfg)
	}
	return p
}

func (p *llmProvider) Name() string { return p.name }

func (p *llmProvider) Available() bool { return p.client != nil }

func (p *llmProvider) Complete(ctx context.Context, params CompletionParams) (string, int, error) {
	if p.client == nil {
		return "", 0, fmt.Errorf("%s: %w", p.name, ErrProviderUnavailable)
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: params.System},
			{Role: openai.ChatMessageRoleUser, Content: params.Prompt},
		},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
	if err != nil {
		return "", 0, fmt.Errorf("%s completion: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", 0, fmt.Errorf("%s completion: empty choice list", p.name)
	}

	return resp.Choices[0].Message.Content, resp.Usage.TotalTokens, nil
}
