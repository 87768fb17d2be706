// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/tomtom215/learnloop/internal/models"
)

func TestCollectGoalSummary(t *testing.T) {
	t.Parallel()

	store := &fakeGoalStore{
		users:      map[string]bool{"u1": true, "u2": true},
		completed:  map[string][]string{"u1": {"HTML basics", "  "}},
		incomplete: map[string][]string{"u1": {"CSS flexbox"}},
	}

	got, err := CollectGoalSummary(context.Background(), store, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got.CompletedNames, []string{"HTML basics"}) {
		t.Errorf("CompletedNames = %q", got.CompletedNames)
	}
	if !slices.Equal(got.IncompleteNames, []string{"CSS flexbox"}) {
		t.Errorf("IncompleteNames = %q", got.IncompleteNames)
	}
	if got.HasNoGoals() {
		t.Error("HasNoGoals should be false")
	}
	if got.GoalCount != 3 {
		t.Errorf("GoalCount = %d, want 3", got.GoalCount)
	}

	empty, err := CollectGoalSummary(context.Background(), store, "u2")
	if err != nil {
		t.Fatal(err)
	}
	if !empty.HasNoGoals() {
		t.Error("user without goals should report HasNoGoals")
	}

	store.users["blank"] = true
	store.incomplete["blank"] = []string{"", "   "}
	blank, err := CollectGoalSummary(context.Background(), store, "blank")
	if err != nil {
		t.Fatal(err)
	}
	if blank.HasNoGoals() {
		t.Error("user whose goals all have blank names still has goals")
	}
	if len(blank.IncompleteNames) != 0 {
		t.Errorf("IncompleteNames = %q, want none", blank.IncompleteNames)
	}

	if _, err := CollectGoalSummary(context.Background(), store, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}

	boom := errors.New("db down")
	if _, err := CollectGoalSummary(context.Background(), &fakeGoalStore{err: boom}, "u1"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped store error", err)
	}
}

func TestBuildWatchedSet(t *testing.T) {
	t.Parallel()

	set, err := BuildWatchedSet(context.Background(), &fakeHistory{watched: map[string][]string{"u1": {"a", "b", ""}}}, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 2 || !set.Contains("a") || !set.Contains("b") {
		t.Errorf("set = %v", set)
	}
	if set.Contains("") {
		t.Error("empty video id must not be recorded")
	}
}

func TestDedupFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		batches [][]models.VideoCandidate
		watched WatchedSet
		want    []string
	}{
		{
			name:    "first occurrence wins across terms",
			batches: [][]models.VideoCandidate{videos("a", "b"), videos("b", "c"), videos("a", "d")},
			want:    []string{"a", "b", "c", "d"},
		},
		{
			name:    "watched excluded",
			batches: [][]models.VideoCandidate{videos("vid1", "vid2"), videos("vid3")},
			watched: WatchedSet{"vid1": {}, "vid3": {}},
			want:    []string{"vid2"},
		},
		{
			name:    "duplicate inside one batch",
			batches: [][]models.VideoCandidate{videos("a", "a", "b")},
			want:    []string{"a", "b"},
		},
		{
			name:    "missing ids dropped",
			batches: [][]models.VideoCandidate{{{Title: "a channel"}}, videos("x")},
			want:    []string{"x"},
		},
		{
			name:    "nil batches from failed terms",
			batches: [][]models.VideoCandidate{nil, videos("x"), nil},
			want:    []string{"x"},
		},
		{
			name:    "nothing in",
			batches: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DedupFilter(tt.batches, tt.watched)
			if got == nil {
				t.Fatal("DedupFilter returned nil slice")
			}
			if ids := videoIDs(got); !slices.Equal(ids, tt.want) {
				t.Errorf("ids = %q, want %q", ids, tt.want)
			}
		})
	}
}

func TestFanoutExecutor(t *testing.T) {
	t.Parallel()

	for _, concurrent := range []bool{false, true} {
		name := "sequential"
		if concurrent {
			name = "concurrent"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := &fakeSearcher{
				results: map[string][]models.VideoCandidate{
					"one":   videos("1a", "1b", "1c", "1d", "1e"),
					"three": videos("3a"),
				},
				errs: map[string]error{"two": errors.New("quota exceeded")},
			}
			cfg := DefaultConfig()
			cfg.ConcurrentFanout = concurrent

			batches := NewFanoutExecutor(s, cfg).Execute(context.Background(), []string{"one", "two", "three"})

			if len(batches) != 3 {
				t.Fatalf("len(batches) = %d, want 3", len(batches))
			}
			if ids := videoIDs(batches[0]); !slices.Equal(ids, []string{"1a", "1b", "1c", "1d"}) {
				t.Errorf("batch 0 = %q, want capped to 4 in provider order", ids)
			}
			if batches[1] != nil {
				t.Errorf("failed term produced %d candidates", len(batches[1]))
			}
			if ids := videoIDs(batches[2]); !slices.Equal(ids, []string{"3a"}) {
				t.Errorf("batch 2 = %q", ids)
			}

			if len(s.calls) != 3 {
				t.Fatalf("search calls = %d, want 3", len(s.calls))
			}
			for _, c := range s.calls {
				if c.maxResults != 4 || !c.longFormOnly {
					t.Errorf("call %+v: want maxResults 4 and long-form", c)
				}
			}
			if !concurrent && !slices.Equal(s.queries(), []string{"one", "two", "three"}) {
				t.Errorf("sequential call order = %q", s.queries())
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := DefaultConfig()
	bad.ResultsPerTerm = 0
	bad.SearchTimeout = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error")
	}
}
