// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

// Package metrics defines the Prometheus collectors exported at /metrics.
//
// Collectors are registered on the default registry through promauto and are
// grouped by concern: HTTP API, recommendation pipeline, external providers,
// circuit breakers and DuckDB. Callers use the Record* helpers rather than
// touching the vectors directly so label sets stay consistent.
package metrics
