// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

// Package recommend implements the goal-driven video recommendation pipeline.
//
// # Pipeline
//
// A request for a user runs these stages in order:
//
//  1. Goal summary: split the user's goals into completed and incomplete
//     name lists. A user with no goals short-circuits to an empty result
//     and no external calls are made.
//  2. Query synthesis: one completion call turns the summary into exactly
//     three search terms. Unusable output falls back to a fixed term list.
//  3. Watched set: the user's watch history, read concurrently with
//     synthesis.
//  4. Fan-out: one search call per term, each capped to a fixed result
//     count. A failing term contributes nothing; the others continue.
//  5. Dedup filter: a single left-to-right pass over the term-ordered
//     candidates, dropping watched videos and repeat video IDs.
//
// # Ordering
//
// Output order is term order, then provider order within a term. Concurrent
// fan-out writes each term's batch into its own slot, so the join is
// deterministic regardless of completion order.
//
// # Errors
//
// Only ErrUserNotFound and store failures surface to callers. Completion and
// search failures are logged, counted in metrics, and absorbed. A canceled
// request returns the context error and no partial result.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), recommend.Dependencies{
//	    Goals:     store,
//	    History:   store,
//	    Completer: gemini,
//	    Searcher:  youtube,
//	}, logging.WithComponent("recommend"))
//	videos, err := engine.Recommend(ctx, userID)
package recommend
