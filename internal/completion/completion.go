// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

// Package completion provides text-completion clients used to synthesize
// video search terms. Two backends exist: Google Gemini through the
// google.golang.org/genai SDK, and a local Ollama server over HTTP.
//
// Both clients run every call through a circuit breaker and record call
// latency in Prometheus. Neither retries; the synthesizer falls back to
// fixed terms instead.
package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/learnloop/internal/config"
	"github.com/tomtom215/learnloop/internal/recommend"
)

// ErrEmptyCompletion is returned when the service answers with no text.
var ErrEmptyCompletion = errors.New("completion returned no text")

// Provider names.
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// New builds the completer selected by cfg.Provider.
func New(ctx context.Context, cfg *config.CompletionConfig) (recommend.Completer, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case ProviderOllama:
		return NewOllamaClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
}
