// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package validation

// RecommendationsRequest is the query of GET /recommendations.
type RecommendationsRequest struct {
	UserID string `query:"userId" validate:"required,max=128,identifier"`
}
