// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/learnloop/internal/metrics"
	"github.com/tomtom215/learnloop/internal/models"
)

// UserExists reports whether a user with the given ID exists.
func (db *DB) UserExists(ctx context.Context, userID string) (exists bool, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "users", time.Since(start), err) }()

	err = db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

// FindGoals returns the user's goals with the given completion state in
// creation order.
func (db *DB) FindGoals(ctx context.Context, userID string, completed bool) (goals []models.Goal, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "goals", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, user_id, name, completed, created_at
		FROM goals
		WHERE user_id = ? AND completed = ?
		ORDER BY created_at, name`, userID, completed)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer closeWithLog(rows, "goal rows")

	for rows.Next() {
		var g models.Goal
		if err = rows.Scan(&g.ID, &g.UserID, &g.Name, &g.Completed, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}
	return goals, nil
}

// FindWatched returns the user's watch-history rows flagged as watched.
func (db *DB) FindWatched(ctx context.Context, userID string) (records []models.WatchRecord, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "watch_history", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT user_id, video_id, watched, watched_at
		FROM watch_history
		WHERE user_id = ? AND watched
		ORDER BY watched_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer closeWithLog(rows, "watch history rows")

	for rows.Next() {
		var r models.WatchRecord
		if err = rows.Scan(&r.UserID, &r.VideoID, &r.Watched, &r.WatchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watch record: %w", err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watch history: %w", err)
	}
	return records, nil
}
