// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

// Package middleware provides the HTTP middleware shared by every route:
// request ID propagation into the logging context, Prometheus request
// instrumentation and structured access logging.
//
// All middleware has the chi signature func(http.Handler) http.Handler.
// Apply RequestID first so later middleware logs with the request ID.
package middleware
