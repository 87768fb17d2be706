// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/learnloop/internal/logging"
	"github.com/tomtom215/learnloop/internal/metrics"
	"github.com/tomtom215/learnloop/internal/models"
)

// FanoutExecutor runs one search per term.
type FanoutExecutor struct {
	searcher     Searcher
	maxResults   int
	longFormOnly bool
	concurrent   bool
	timeout      time.Duration
}

// NewFanoutExecutor builds an executor from the pipeline config.
func NewFanoutExecutor(searcher Searcher, cfg *Config) *FanoutExecutor {
	return &FanoutExecutor{
		searcher:     searcher,
		maxResults:   cfg.ResultsPerTerm,
		longFormOnly: cfg.LongFormOnly,
		concurrent:   cfg.ConcurrentFanout,
		timeout:      cfg.SearchTimeout,
	}
}

// Execute returns one batch per term, in term order. A failed term yields a
// nil batch and is logged; it never fails the whole fan-out.
func (f *FanoutExecutor) Execute(ctx context.Context, terms []string) [][]models.VideoCandidate {
	batches := make([][]models.VideoCandidate, len(terms))

	if !f.concurrent {
		for i, term := range terms {
			batches[i] = f.searchTerm(ctx, i, term)
		}
		return batches
	}

	// Goroutines only write their own slot and never return an error, so
	// Wait cannot fail and a slow term never cancels its siblings.
	var g errgroup.Group
	for i, term := range terms {
		g.Go(func() error {
			batches[i] = f.searchTerm(ctx, i, term)
			return nil
		})
	}
	_ = g.Wait()

	return batches
}

func (f *FanoutExecutor) searchTerm(ctx context.Context, index int, term string) []models.VideoCandidate {
	callCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	results, err := f.searcher.Search(callCtx, term, f.maxResults, f.longFormOnly)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Int("term_index", index).
			Str("term", term).
			Msg("search term failed, continuing without its results")
		metrics.RecordSearchTermFailure()
		return nil
	}

	// Providers occasionally ignore the cap.
	if len(results) > f.maxResults {
		results = results[:f.maxResults]
	}
	return results
}
