// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package services

import (
	"context"
	"time"

	"github.com/tomtom215/learnloop/internal/logging"
)

// Checkpointer flushes the DuckDB WAL into the database file.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService checkpoints the database on a fixed interval. Failures
// are logged and retried on the next tick, never returned to the
// supervisor.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
}

// NewCheckpointService creates the service. Non-positive intervals default
// to 15 minutes.
func NewCheckpointService(db Checkpointer, interval time.Duration) *CheckpointService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &CheckpointService{db: db, interval: interval}
}

// Serve implements suture.Service.
func (c *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cctx, cancel := context.WithTimeout(ctx, time.Minute)
			if err := c.db.Checkpoint(cctx); err != nil {
				logging.Warn().Err(err).Msg("Database checkpoint failed")
			}
			cancel()
		}
	}
}

func (c *CheckpointService) String() string {
	return "duckdb-checkpoint"
}
