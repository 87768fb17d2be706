// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

/*
Package api provides the HTTP surface of the recommendation service using
the chi router.

Routes:

	GET /recommendations?userId=<id>   authenticated, rate limited
	GET /health/live                   liveness probe
	GET /health/ready                  readiness probe (pings DuckDB)
	GET /metrics                       Prometheus exposition

Success bodies for /recommendations have the shape

	{"recommendations": [ <provider search result>, ... ]}

where each element is the search provider's item passed through unchanged.
Every error body is {"message": "..."}:

  - 400 when userId is missing or malformed
  - 401 when the bearer token is missing or invalid
  - 403 when the token subject is not userId and the caller is not admin
  - 404 when the user does not exist
  - 429 when the rate limit is exceeded
  - 500 for any other pipeline failure

A user without goals receives 200 with an empty list.

Middleware order: request ID, real IP, panic recovery, access log, CORS,
then per-group rate limiting, Prometheus instrumentation and
authentication.
*/
package api
