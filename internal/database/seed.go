// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/learnloop/internal/logging"
)

// DemoUserID is the user created by SeedDemoData.
const DemoUserID = "demo-user"

type demoGoal struct {
	name      string
	completed bool
}

var demoGoals = []demoGoal{
	{"HTML basics", true},
	{"Git fundamentals", true},
	{"CSS flexbox", false},
	{"JavaScript promises", false},
}

var demoWatched = []string{"dQw4w9WgXcQ"}

// SeedDemoData creates the demo user with a few goals when it does not
// already exist. It is a no-op on subsequent runs.
func (db *DB) SeedDemoData(ctx context.Context) error {
	exists, err := db.UserExists(ctx, DemoUserID)
	if err != nil {
		return err
	}
	if exists {
		logging.Debug().Str("user_id", DemoUserID).Msg("Demo data already present")
		return nil
	}

	if err := db.CreateUser(ctx, DemoUserID, "Demo Learner"); err != nil {
		return err
	}
	for _, g := range demoGoals {
		if _, err := db.AddGoal(ctx, DemoUserID, g.name, g.completed); err != nil {
			return fmt.Errorf("seed goal %q: %w", g.name, err)
		}
	}
	for _, id := range demoWatched {
		if err := db.RecordWatch(ctx, DemoUserID, id, true); err != nil {
			return fmt.Errorf("seed watch %q: %w", id, err)
		}
	}

	logging.Info().Str("user_id", DemoUserID).Int("goals", len(demoGoals)).Msg("Seeded demo data")
	return nil
}
