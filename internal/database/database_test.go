// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/learnloop/internal/config"
)

// testDBSemaphore serializes DuckDB usage across tests. It is held for the
// whole test so only one in-memory database is active at a time.
var testDBSemaphore = make(chan struct{}, 1)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	db, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   1,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestNew_Ping(t *testing.T) {
	db := setupTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if db.Conn() == nil {
		t.Fatal("Conn() returned nil")
	}
}

func TestUserExists(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	exists, err := db.UserExists(ctx, "u1")
	if err != nil {
		t.Fatalf("UserExists() error = %v", err)
	}
	if exists {
		t.Error("UserExists() = true before insert")
	}

	if err := db.CreateUser(ctx, "u1", "User One"); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	// Second insert is ignored.
	if err := db.CreateUser(ctx, "u1", "Renamed"); err != nil {
		t.Fatalf("CreateUser() repeat error = %v", err)
	}

	exists, err = db.UserExists(ctx, "u1")
	if err != nil {
		t.Fatalf("UserExists() error = %v", err)
	}
	if !exists {
		t.Error("UserExists() = false after insert")
	}
}

func TestFindGoals(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.CreateUser(ctx, "u1", ""); err != nil {
		t.Fatal(err)
	}
	for _, g := range []struct {
		name      string
		completed bool
	}{
		{"a HTML basics", true},
		{"b CSS flexbox", false},
		{"c Git", true},
		{"d Go generics", false},
	} {
		if _, err := db.AddGoal(ctx, "u1", g.name, g.completed); err != nil {
			t.Fatalf("AddGoal(%q) error = %v", g.name, err)
		}
	}
	if _, err := db.AddGoal(ctx, "u2", "other user", true); err != nil {
		t.Fatal(err)
	}

	completed, err := db.FindGoals(ctx, "u1", true)
	if err != nil {
		t.Fatalf("FindGoals(completed) error = %v", err)
	}
	if got := goalNames(completed); !equalStrings(got, []string{"a HTML basics", "c Git"}) {
		t.Errorf("completed goals = %v", got)
	}

	incomplete, err := db.FindGoals(ctx, "u1", false)
	if err != nil {
		t.Fatalf("FindGoals(incomplete) error = %v", err)
	}
	if got := goalNames(incomplete); !equalStrings(got, []string{"b CSS flexbox", "d Go generics"}) {
		t.Errorf("incomplete goals = %v", got)
	}
	for _, g := range incomplete {
		if g.ID == "" || g.UserID != "u1" || g.Completed {
			t.Errorf("unexpected goal row %+v", g)
		}
	}

	none, err := db.FindGoals(ctx, "nobody", true)
	if err != nil {
		t.Fatalf("FindGoals(nobody) error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("FindGoals(nobody) = %v, want empty", none)
	}
}

func TestFindWatched(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, w := range []struct {
		video   string
		watched bool
	}{
		{"vid1", true},
		{"vid2", false},
		{"vid3", true},
	} {
		if err := db.RecordWatch(ctx, "u1", w.video, w.watched); err != nil {
			t.Fatalf("RecordWatch(%q) error = %v", w.video, err)
		}
	}
	// Unmarking removes vid3 from the watched set.
	if err := db.RecordWatch(ctx, "u1", "vid3", false); err != nil {
		t.Fatal(err)
	}
	if err := db.RecordWatch(ctx, "u2", "vid9", true); err != nil {
		t.Fatal(err)
	}

	records, err := db.FindWatched(ctx, "u1")
	if err != nil {
		t.Fatalf("FindWatched() error = %v", err)
	}
	if len(records) != 1 || records[0].VideoID != "vid1" || !records[0].Watched {
		t.Errorf("FindWatched() = %+v, want only vid1", records)
	}
}

func TestWriteHelpers_InvalidInput(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.CreateUser(ctx, " ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("CreateUser() error = %v, want ErrInvalidInput", err)
	}
	if _, err := db.AddGoal(ctx, "u1", "", false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("AddGoal() error = %v, want ErrInvalidInput", err)
	}
	if err := db.RecordWatch(ctx, "u1", "", true); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("RecordWatch() error = %v, want ErrInvalidInput", err)
	}
}

func TestSeedDemoData(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData() error = %v", err)
	}
	// Idempotent.
	if err := db.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData() second run error = %v", err)
	}

	exists, err := db.UserExists(ctx, DemoUserID)
	if err != nil || !exists {
		t.Fatalf("demo user missing: exists=%v err=%v", exists, err)
	}
	completed, err := db.FindGoals(ctx, DemoUserID, true)
	if err != nil {
		t.Fatal(err)
	}
	incomplete, err := db.FindGoals(ctx, DemoUserID, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(completed)+len(incomplete) != len(demoGoals) {
		t.Errorf("seeded %d goals, want %d", len(completed)+len(incomplete), len(demoGoals))
	}
	watched, err := db.FindWatched(ctx, DemoUserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(watched) != len(demoWatched) {
		t.Errorf("seeded %d watched videos, want %d", len(watched), len(demoWatched))
	}
}

func TestQueries_CanceledContext(t *testing.T) {
	db := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := db.FindGoals(ctx, "u1", true); err == nil {
		t.Error("FindGoals() with canceled context should fail")
	}
}
