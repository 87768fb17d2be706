// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/learnloop/internal/models"
)

// GoalSummary is a user's goal state at request time.
type GoalSummary struct {
	CompletedNames  []string
	IncompleteNames []string

	// GoalCount is the number of goal records read, including goals whose
	// names are blank and so missing from the name lists.
	GoalCount int
}

// HasNoGoals reports whether the user has no goal records at all.
func (s GoalSummary) HasNoGoals() bool {
	return s.GoalCount == 0 && len(s.CompletedNames) == 0 && len(s.IncompleteNames) == 0
}

// CollectGoalSummary reads the user's goals and splits them by completion.
// It returns ErrUserNotFound if the user does not exist.
func CollectGoalSummary(ctx context.Context, store GoalStore, userID string) (GoalSummary, error) {
	exists, err := store.UserExists(ctx, userID)
	if err != nil {
		return GoalSummary{}, fmt.Errorf("look up user: %w", err)
	}
	if !exists {
		return GoalSummary{}, ErrUserNotFound
	}

	completed, err := store.FindGoals(ctx, userID, true)
	if err != nil {
		return GoalSummary{}, fmt.Errorf("find completed goals: %w", err)
	}
	incomplete, err := store.FindGoals(ctx, userID, false)
	if err != nil {
		return GoalSummary{}, fmt.Errorf("find incomplete goals: %w", err)
	}

	return GoalSummary{
		CompletedNames:  goalNames(completed),
		IncompleteNames: goalNames(incomplete),
		GoalCount:       len(completed) + len(incomplete),
	}, nil
}

// goalNames keeps store order and drops blank names.
func goalNames(goals []models.Goal) []string {
	names := make([]string, 0, len(goals))
	for _, g := range goals {
		if name := strings.TrimSpace(g.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
