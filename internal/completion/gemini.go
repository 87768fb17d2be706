// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/tomtom215/learnloop/internal/circuitbreaker"
	"github.com/tomtom215/learnloop/internal/config"
	"github.com/tomtom215/learnloop/internal/logging"
	"github.com/tomtom215/learnloop/internal/metrics"
)

const geminiSystemInstruction = "You suggest short video search phrases for self-directed learners. " +
	"Answer with plain lines only."

// GeminiClient completes prompts with the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	config  *genai.GenerateContentConfig
	breaker *circuitbreaker.Breaker[string]
}

// NewGeminiClient creates a Gemini client for the public Gemini API.
func NewGeminiClient(ctx context.Context, cfg *config.CompletionConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Timeout > 0 {
		cc.HTTPOptions.Timeout = genai.Ptr(cfg.Timeout)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newGeminiClient(client, cfg), nil
}

func newGeminiClient(client *genai.Client, cfg *config.CompletionConfig) *GeminiClient {
	gc := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(cfg.Temperature)),
		SystemInstruction: genai.NewContentFromText(geminiSystemInstruction, genai.RoleUser),
	}
	if cfg.MaxOutputTokens > 0 {
		gc.MaxOutputTokens = int32(cfg.MaxOutputTokens)
	}
	return &GeminiClient{
		client:  client,
		model:   cfg.Model,
		config:  gc,
		breaker: circuitbreaker.New[string]("gemini", circuitbreaker.Settings{}),
	}
}

// Complete sends prompt as a single user turn and returns the response text.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := g.breaker.Execute(func() (string, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
		if err != nil {
			return "", fmt.Errorf("gemini generate: %w", err)
		}
		text := resp.Text()
		if strings.TrimSpace(text) == "" {
			return "", ErrEmptyCompletion
		}
		return text, nil
	})
	metrics.RecordExternalCall(ProviderGemini, time.Since(start), err)

	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("model", g.model).Msg("Gemini completion failed")
		return "", err
	}
	return text, nil
}
