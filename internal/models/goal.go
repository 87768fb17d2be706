// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package models

import "time"

// Goal is a learning goal owned by a user.
type Goal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// WatchRecord marks a video as seen by a user.
type WatchRecord struct {
	UserID    string    `json:"user_id"`
	VideoID   string    `json:"video_id"`
	Watched   bool      `json:"watched"`
	WatchedAt time.Time `json:"watched_at"`
}
