// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package api

import (
	"context"
	"net/http"
	"time"
)

// HealthStatus is the body of both health probes.
type HealthStatus struct {
	Status            string  `json:"status"`
	DatabaseConnected *bool   `json:"database_connected,omitempty"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
}

// HealthLive reports that the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 only when the database answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	connected := h.db != nil && h.db.Ping(ctx) == nil

	status, code := "ready", http.StatusOK
	if !connected {
		status, code = "not_ready", http.StatusServiceUnavailable
	}
	respondJSON(w, code, HealthStatus{
		Status:            status,
		DatabaseConnected: &connected,
		UptimeSeconds:     time.Since(h.startTime).Seconds(),
	})
}
