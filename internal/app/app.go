// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

// Package app wires configuration into the recommendation pipeline. It is
// shared by the server and the operator CLI so both run the same stack.
package app

import (
	"context"
	"fmt"

	"google.golang.org/api/option"

	"github.com/tomtom215/learnloop/internal/completion"
	"github.com/tomtom215/learnloop/internal/config"
	"github.com/tomtom215/learnloop/internal/logging"
	"github.com/tomtom215/learnloop/internal/recommend"
	"github.com/tomtom215/learnloop/internal/search"
)

// Store is the persistence the pipeline reads from.
type Store interface {
	recommend.GoalStore
	recommend.WatchHistoryStore
}

// InitLogging applies the logging section of cfg to the global logger.
func InitLogging(cfg *config.Config) {
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
}

// EngineConfig maps loaded configuration onto pipeline parameters.
func EngineConfig(cfg *config.Config) *recommend.Config {
	engineCfg := recommend.DefaultConfig()

	if cfg.Recommend.ResultsPerTerm > 0 {
		engineCfg.ResultsPerTerm = cfg.Recommend.ResultsPerTerm
	}
	engineCfg.LongFormOnly = cfg.Search.LongFormOnly
	engineCfg.ConcurrentFanout = cfg.Recommend.ConcurrentFanout
	if cfg.Completion.Timeout > 0 {
		engineCfg.CompletionTimeout = cfg.Completion.Timeout
	}
	if cfg.Search.Timeout > 0 {
		engineCfg.SearchTimeout = cfg.Search.Timeout
	}
	engineCfg.RequestTimeout = cfg.Recommend.RequestTimeout

	return engineCfg
}

// NewCompleter builds the configured completion client.
func NewCompleter(ctx context.Context, cfg *config.Config) (recommend.Completer, error) {
	completer, err := completion.New(ctx, &cfg.Completion)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	return completer, nil
}

// NewEngine builds the full pipeline over store. searchOpts are passed to
// the YouTube client.
func NewEngine(ctx context.Context, cfg *config.Config, store Store, searchOpts ...option.ClientOption) (*recommend.Engine, error) {
	completer, err := NewCompleter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	searcher, err := search.NewYouTubeClient(ctx, &cfg.Search, searchOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	return newEngine(cfg, store, completer, searcher)
}

func newEngine(cfg *config.Config, store Store, completer recommend.Completer, searcher recommend.Searcher) (*recommend.Engine, error) {
	engineCfg := EngineConfig(cfg)

	engine, err := recommend.NewEngine(engineCfg, recommend.Dependencies{
		Goals:     store,
		History:   store,
		Completer: completer,
		Searcher:  searcher,
	}, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation engine: %w", err)
	}

	logging.Info().
		Str("completion_provider", cfg.Completion.Provider).
		Str("completion_model", cfg.Completion.Model).
		Int("results_per_term", engineCfg.ResultsPerTerm).
		Bool("long_form_only", engineCfg.LongFormOnly).
		Bool("concurrent_fanout", engineCfg.ConcurrentFanout).
		Msg("Recommendation pipeline ready")
	return engine, nil
}
