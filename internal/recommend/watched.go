// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"context"
	"fmt"
)

// WatchedSet holds video IDs the user has already watched.
type WatchedSet map[string]struct{}

// Contains reports whether videoID has been watched.
func (w WatchedSet) Contains(videoID string) bool {
	_, ok := w[videoID]
	return ok
}

// BuildWatchedSet reads the user's watch history into a set.
func BuildWatchedSet(ctx context.Context, store WatchHistoryStore, userID string) (WatchedSet, error) {
	records, err := store.FindWatched(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find watched videos: %w", err)
	}

	set := make(WatchedSet, len(records))
	for _, r := range records {
		if r.VideoID != "" {
			set[r.VideoID] = struct{}{}
		}
	}
	return set, nil
}
