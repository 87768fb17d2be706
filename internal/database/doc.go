// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

/*
Package database provides the DuckDB-backed stores the recommendation
pipeline reads from.

The DB type owns a single *sql.DB opened through the duckdb-go driver and
implements the goal store and watch-history store contracts consumed by
internal/recommend:

  - UserExists reports whether a user row is present
  - FindGoals returns a user's goals filtered by completion state, oldest first
  - FindWatched returns the user's watch-history rows flagged as watched

Write helpers (CreateUser, AddGoal, RecordWatch) back the demo seed data and
the learnctl tool. They are not used by the request path.

Schema:

	users         (id PK, display_name, created_at)
	goals         (id PK, user_id, name, completed, created_at)
	watch_history (user_id, video_id, watched, watched_at; PK user_id+video_id)

Every query records its latency and failures through internal/metrics.

Testing:

Use Path ":memory:" for an isolated in-process database. Tests serialize
DuckDB access through a package-level semaphore.
*/
package database
