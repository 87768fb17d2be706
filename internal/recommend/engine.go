// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/learnloop/internal/logging"
	"github.com/tomtom215/learnloop/internal/metrics"
	"github.com/tomtom215/learnloop/internal/models"
)

// Dependencies are the collaborators the engine reads from and calls out to.
type Dependencies struct {
	Goals     GoalStore
	History   WatchHistoryStore
	Completer Completer
	Searcher  Searcher
}

func (d Dependencies) validate() error {
	var errs []error
	if d.Goals == nil {
		errs = append(errs, errors.New("goal store is required"))
	}
	if d.History == nil {
		errs = append(errs, errors.New("watch history store is required"))
	}
	if d.Completer == nil {
		errs = append(errs, errors.New("completer is required"))
	}
	if d.Searcher == nil {
		errs = append(errs, errors.New("searcher is required"))
	}
	return errors.Join(errs...)
}

// Engine runs the recommendation pipeline. It holds no per-request state
// and is safe for concurrent use.
type Engine struct {
	config      *Config
	logger      zerolog.Logger
	goals       GoalStore
	history     WatchHistoryStore
	synthesizer *Synthesizer
	fanout      *FanoutExecutor
}

// NewEngine creates an engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg *Config, deps Dependencies, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	return &Engine{
		config:      cfg,
		logger:      logger,
		goals:       deps.Goals,
		history:     deps.History,
		synthesizer: NewSynthesizer(deps.Completer, cfg.CompletionTimeout),
		fanout:      NewFanoutExecutor(deps.Searcher, cfg),
	}, nil
}

// Recommend returns deduplicated, unwatched video candidates for userID.
//
// A user with no goals gets an empty, non-nil slice and no external calls.
// ErrUserNotFound is returned for unknown users. If ctx ends mid-run the
// context error is returned and nothing partial is.
func (e *Engine) Recommend(ctx context.Context, userID string) ([]models.VideoCandidate, error) {
	start := time.Now()

	if e.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.RequestTimeout)
		defer cancel()
	}

	ctx = logging.ContextWithLogger(ctx, e.logger.With().Str("user_id", userID).Logger())

	result, outcome, err := e.run(ctx, userID)
	metrics.RecordPipelineRun(outcome, time.Since(start), len(result))
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Int("returned", len(result)).
		Dur("latency", time.Since(start)).
		Msg("recommendations built")
	return result, nil
}

func (e *Engine) run(ctx context.Context, userID string) ([]models.VideoCandidate, string, error) {
	summary, err := CollectGoalSummary(ctx, e.goals, userID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, "user_not_found", err
	}
	if err != nil {
		return nil, "error", err
	}
	if summary.HasNoGoals() {
		logging.Ctx(ctx).Debug().Msg("user has no goals, skipping synthesis and search")
		return []models.VideoCandidate{}, "no_goals", nil
	}

	// Synthesis never fails, so the group's context only ends on a
	// watch-history error or caller cancellation.
	var (
		synthesis Synthesis
		watched   WatchedSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		synthesis = e.synthesizer.Synthesize(gctx, summary)
		return nil
	})
	g.Go(func() error {
		var werr error
		watched, werr = BuildWatchedSet(gctx, e.history, userID)
		return werr
	})
	if err := g.Wait(); err != nil {
		return nil, "error", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "error", err
	}

	logging.Ctx(ctx).Debug().
		Strs("terms", synthesis.Terms).
		Str("term_source", string(synthesis.Source)).
		Int("watched", len(watched)).
		Msg("search terms ready")

	batches := e.fanout.Execute(ctx, synthesis.Terms)
	if err := ctx.Err(); err != nil {
		return nil, "error", err
	}

	return DedupFilter(batches, watched), "ok", nil
}

// Terms runs query synthesis alone for the given goal names.
func (e *Engine) Terms(ctx context.Context, completed, incomplete []string) Synthesis {
	return e.synthesizer.Synthesize(ctx, GoalSummary{CompletedNames: completed, IncompleteNames: incomplete})
}
