// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

/*
Package search implements the video search provider used by the
recommendation fan-out, backed by the YouTube Data API v3.

Each Search call issues one search.list request for videos matching the
query, optionally restricted to long-form content (videoDuration=long).
Results keep the provider's order and are projected onto
models.VideoCandidate with the provider's full item JSON kept as Raw, so
the HTTP layer can pass provider fields through untouched.

Failure handling:

  - Transient errors (HTTP 5xx, 429, network failures) are retried with
    exponential backoff, up to SearchConfig.RetryAttempts extra attempts
  - Quota exhaustion maps to ErrQuotaExceeded and is never retried
  - All calls go through a circuit breaker named "youtube"

The caller owns the per-call deadline through ctx.
*/
package search
