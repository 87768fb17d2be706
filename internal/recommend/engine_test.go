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
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnloop/internal/models"
)

type engineFixture struct {
	goals     *fakeGoalStore
	history   *fakeHistory
	completer *fakeCompleter
	searcher  *fakeSearcher
}

func newFixture() *engineFixture {
	return &engineFixture{
		goals: &fakeGoalStore{
			users:      map[string]bool{"u1": true, "empty": true},
			completed:  map[string][]string{"u1": {"HTML basics"}},
			incomplete: map[string][]string{"u1": {"CSS flexbox"}},
		},
		history:   &fakeHistory{watched: map[string][]string{"u1": {"vid1"}}},
		completer: &fakeCompleter{text: "flexbox tutorial\ncss layout\nhtml css project"},
		searcher: &fakeSearcher{
			results: map[string][]models.VideoCandidate{
				"flexbox tutorial": videos("vid1", "vid2", "vid3", "vid4"),
				"css layout":       videos("vid3", "vid5", "vid6", "vid7"),
				"html css project": videos("vid2", "vid8", "vid1", "vid9"),
			},
		},
	}
}

func (f *engineFixture) engine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	e, err := NewEngine(cfg, Dependencies{
		Goals:     f.goals,
		History:   f.history,
		Completer: f.completer,
		Searcher:  f.searcher,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestEngine_OverlappingBatches(t *testing.T) {
	t.Parallel()

	f := newFixture()
	got, err := f.engine(t, nil).Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"vid2", "vid3", "vid4", "vid5", "vid6", "vid7", "vid8", "vid9"}
	if ids := videoIDs(got); !slices.Equal(ids, want) {
		t.Errorf("ids = %q, want %q", ids, want)
	}

	seen := map[string]bool{}
	for _, v := range got {
		if v.VideoID == "vid1" {
			t.Error("watched video vid1 returned")
		}
		if seen[v.VideoID] {
			t.Errorf("duplicate %s", v.VideoID)
		}
		seen[v.VideoID] = true
	}
}

func TestEngine_BlankGoalNamesStillSearch(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.goals.users["blank"] = true
	f.goals.incomplete["blank"] = []string{" "}

	if _, err := f.engine(t, nil).Recommend(context.Background(), "blank"); err != nil {
		t.Fatal(err)
	}
	if f.completer.callCount() != 1 {
		t.Errorf("completer called %d times, want 1", f.completer.callCount())
	}
	if n := len(f.searcher.queries()); n != TermCount {
		t.Errorf("searcher called %d times, want %d", n, TermCount)
	}
}

func TestEngine_NoGoalsMakesNoCalls(t *testing.T) {
	t.Parallel()

	f := newFixture()
	got, err := f.engine(t, nil).Recommend(context.Background(), "empty")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
	if f.completer.callCount() != 0 {
		t.Errorf("completer called %d times", f.completer.callCount())
	}
	if n := len(f.searcher.queries()); n != 0 {
		t.Errorf("searcher called %d times", n)
	}
}

func TestEngine_CompletionTimeoutUsesFallback(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.completer = &fakeCompleter{block: true}
	fb := FallbackTerms()
	f.searcher.results = map[string][]models.VideoCandidate{
		fb[0]: videos("f1"),
		fb[1]: videos("f2"),
		fb[2]: videos("f3"),
	}

	e := f.engine(t, func(c *Config) { c.CompletionTimeout = 20 * time.Millisecond })
	got, err := e.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	q := f.searcher.queries()
	slices.Sort(q)
	sortedFB := slices.Clone(fb)
	slices.Sort(sortedFB)
	if !slices.Equal(q, sortedFB) {
		t.Errorf("search queries = %q, want fallback terms %q", q, fb)
	}
	if ids := videoIDs(got); !slices.Equal(ids, []string{"f1", "f2", "f3"}) {
		t.Errorf("ids = %q", ids)
	}
}

func TestEngine_PartialSearchFailure(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.history.watched = nil
	f.searcher.errs = map[string]error{"css layout": errors.New("500 backend error")}

	got, err := f.engine(t, nil).Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"vid1", "vid2", "vid3", "vid4", "vid8", "vid9"}
	if ids := videoIDs(got); !slices.Equal(ids, want) {
		t.Errorf("ids = %q, want %q", ids, want)
	}
}

func TestEngine_AllExternalCallsFail(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.completer = &fakeCompleter{err: errors.New("unavailable")}
	fail := errors.New("down")
	f.searcher.errs = map[string]error{}
	for _, term := range FallbackTerms() {
		f.searcher.errs[term] = fail
	}

	got, err := f.engine(t, nil).Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty result", got)
	}
	if n := len(f.searcher.queries()); n != TermCount {
		t.Errorf("search calls = %d, want %d", n, TermCount)
	}
}

func TestEngine_UserNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.engine(t, nil).Recommend(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if f.completer.callCount() != 0 {
		t.Error("completer called for unknown user")
	}
}

func TestEngine_WatchHistoryErrorFails(t *testing.T) {
	t.Parallel()

	f := newFixture()
	boom := errors.New("history unavailable")
	f.history.err = boom

	got, err := f.engine(t, nil).Recommend(context.Background(), "u1")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want history error", err)
	}
	if got != nil {
		t.Errorf("partial result returned: %v", got)
	}
}

func TestEngine_CanceledReturnsNoPartialResult(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := f.engine(t, nil).Recommend(ctx, "u1")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if got != nil {
		t.Errorf("partial result returned: %v", got)
	}
}

func TestEngine_Terms(t *testing.T) {
	t.Parallel()

	f := newFixture()
	s := f.engine(t, nil).Terms(context.Background(), []string{"HTML basics"}, []string{"CSS flexbox"})
	if s.Source != SourceCompletion || len(s.Terms) != TermCount {
		t.Errorf("Terms() = %+v", s)
	}
}

func TestNewEngine_RequiresDependencies(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(nil, Dependencies{}, zerolog.Nop()); err == nil {
		t.Error("expected error for missing dependencies")
	}

	cfg := DefaultConfig()
	cfg.ResultsPerTerm = -1
	f := newFixture()
	_, err := NewEngine(cfg, Dependencies{Goals: f.goals, History: f.history, Completer: f.completer, Searcher: f.searcher}, zerolog.Nop())
	if err == nil {
		t.Error("expected error for invalid config")
	}
}
