// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/learnloop/internal/metrics"
	"github.com/tomtom215/learnloop/internal/models"
)

// CreateUser inserts a user. Existing users are left unchanged.
func (db *DB) CreateUser(ctx context.Context, userID, displayName string) (err error) {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is empty", ErrInvalidInput)
	}
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "users", time.Since(start), err) }()

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO users (id, display_name) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		userID, displayName)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// AddGoal stores a new goal and returns it with a generated ID.
func (db *DB) AddGoal(ctx context.Context, userID, name string, completed bool) (goal models.Goal, err error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(name) == "" {
		return models.Goal{}, fmt.Errorf("%w: user id and goal name are required", ErrInvalidInput)
	}
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "goals", time.Since(start), err) }()

	goal = models.Goal{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Completed: completed,
		CreatedAt: time.Now().UTC(),
	}
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO goals (id, user_id, name, completed, created_at) VALUES (?, ?, ?, ?, ?)`,
		goal.ID, goal.UserID, goal.Name, goal.Completed, goal.CreatedAt)
	if err != nil {
		return models.Goal{}, fmt.Errorf("failed to add goal: %w", err)
	}
	return goal, nil
}

// RecordWatch upserts a watch-history row.
func (db *DB) RecordWatch(ctx context.Context, userID, videoID string, watched bool) (err error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(videoID) == "" {
		return fmt.Errorf("%w: user id and video id are required", ErrInvalidInput)
	}
	start := time.Now()
	defer func() { metrics.RecordDBQuery("upsert", "watch_history", time.Since(start), err) }()

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO watch_history (user_id, video_id, watched, watched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, video_id) DO UPDATE SET
			watched = excluded.watched,
			watched_at = excluded.watched_at`,
		userID, videoID, watched, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record watch: %w", err)
	}
	return nil
}
