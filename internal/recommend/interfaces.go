// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"context"

	"github.com/tomtom215/learnloop/internal/models"
)

// GoalStore reads a user's learning goals.
type GoalStore interface {
	// UserExists reports whether userID resolves to a known user.
	UserExists(ctx context.Context, userID string) (bool, error)

	// FindGoals returns the user's goals with the given completion flag.
	FindGoals(ctx context.Context, userID string, completed bool) ([]models.Goal, error)
}

// WatchHistoryStore reads a user's watch history.
type WatchHistoryStore interface {
	// FindWatched returns records flagged as watched.
	FindWatched(ctx context.Context, userID string) ([]models.WatchRecord, error)
}

// Completer is a text-completion service.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Searcher is a video search provider.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int, longFormOnly bool) ([]models.VideoCandidate, error)
}
