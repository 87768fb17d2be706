// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/learnloop/internal/auth"
	"github.com/tomtom215/learnloop/internal/logging"
	"github.com/tomtom215/learnloop/internal/models"
	"github.com/tomtom215/learnloop/internal/recommend"
	"github.com/tomtom215/learnloop/internal/validation"
)

// Recommendations handles GET /recommendations?userId=<id>.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	req := validation.RecommendationsRequest{UserID: r.URL.Query().Get("userId")}
	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !auth.CanAccessUser(r.Context(), req.UserID) {
		respondError(w, http.StatusForbidden, "not allowed to read recommendations for this user")
		return
	}

	results, err := h.recommender.Recommend(r.Context(), req.UserID)
	switch {
	case err == nil:
		if results == nil {
			results = []models.VideoCandidate{}
		}
		respondJSON(w, http.StatusOK, RecommendationsResponse{Recommendations: results})
	case errors.Is(err, recommend.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "user not found")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("user_id", req.UserID).Msg("Recommendation pipeline failed")
		respondError(w, http.StatusInternalServerError, "failed to build recommendations")
	}
}
