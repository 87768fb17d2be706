// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package api

import (
	"context"
	"time"

	"github.com/tomtom215/learnloop/internal/models"
)

// Recommender builds recommendations for a user. *recommend.Engine
// satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, userID string) ([]models.VideoCandidate, error)
}

// Pinger reports storage health. *database.DB satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies of all HTTP handlers.
type Handler struct {
	recommender Recommender
	db          Pinger
	startTime   time.Time
}

// NewHandler creates a handler. db may be nil, in which case readiness
// always fails.
func NewHandler(recommender Recommender, db Pinger) *Handler {
	return &Handler{
		recommender: recommender,
		db:          db,
		startTime:   time.Now(),
	}
}
