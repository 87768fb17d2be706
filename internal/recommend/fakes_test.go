// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"context"
	"sync"

	"github.com/tomtom215/learnloop/internal/models"
)

// fakeGoalStore serves goals from memory.
type fakeGoalStore struct {
	users      map[string]bool
	completed  map[string][]string
	incomplete map[string][]string
	err        error
}

func (f *fakeGoalStore) UserExists(_ context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.users[userID], nil
}

func (f *fakeGoalStore) FindGoals(_ context.Context, userID string, completed bool) ([]models.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := f.incomplete[userID]
	if completed {
		names = f.completed[userID]
	}
	goals := make([]models.Goal, 0, len(names))
	for _, n := range names {
		goals = append(goals, models.Goal{UserID: userID, Name: n, Completed: completed})
	}
	return goals, nil
}

// fakeHistory serves watched video IDs from memory.
type fakeHistory struct {
	watched map[string][]string
	err     error
}

func (f *fakeHistory) FindWatched(_ context.Context, userID string) ([]models.WatchRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.WatchRecord, 0, len(f.watched[userID]))
	for _, id := range f.watched[userID] {
		out = append(out, models.WatchRecord{UserID: userID, VideoID: id, Watched: true})
	}
	return out, nil
}

// fakeCompleter returns a canned response, or blocks until ctx ends when block is set.
type fakeCompleter struct {
	mu      sync.Mutex
	text    string
	err     error
	block   bool
	calls   int
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func (f *fakeCompleter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// searchCall records one Search invocation.
type searchCall struct {
	query        string
	maxResults   int
	longFormOnly bool
}

// fakeSearcher returns per-query results and per-query errors.
type fakeSearcher struct {
	mu      sync.Mutex
	results map[string][]models.VideoCandidate
	errs    map[string]error
	calls   []searchCall
}

func (f *fakeSearcher) Search(_ context.Context, query string, maxResults int, longFormOnly bool) ([]models.VideoCandidate, error) {
	f.mu.Lock()
	f.calls = append(f.calls, searchCall{query: query, maxResults: maxResults, longFormOnly: longFormOnly})
	f.mu.Unlock()

	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func (f *fakeSearcher) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.query
	}
	return out
}

func videos(ids ...string) []models.VideoCandidate {
	out := make([]models.VideoCandidate, len(ids))
	for i, id := range ids {
		out[i] = models.VideoCandidate{VideoID: id, Title: "title " + id}
	}
	return out
}

func videoIDs(vs []models.VideoCandidate) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.VideoID
	}
	return out
}
