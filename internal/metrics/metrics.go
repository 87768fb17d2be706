// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation pipeline
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_pipeline_runs_total",
			Help: "Recommendation pipeline runs by outcome",
		},
		[]string{"outcome"}, // ok, no_goals, user_not_found, error
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_pipeline_duration_seconds",
			Help:    "End-to-end recommendation pipeline duration",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_results_per_run",
			Help:    "Number of candidates returned per pipeline run",
			Buckets: []float64{0, 1, 2, 4, 6, 8, 10, 12},
		},
	)

	SynthesisFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_synthesis_fallbacks_total",
			Help: "Times the fixed fallback search terms were used",
		},
		[]string{"reason"}, // completion_error, no_usable_lines, padded
	)

	SearchTermFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_search_term_failures_total",
			Help: "Search terms whose provider call failed and contributed no candidates",
		},
	)

	CandidatesFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_candidates_filtered_total",
			Help: "Candidates dropped by the dedup filter",
		},
		[]string{"reason"}, // watched, duplicate, missing_id
	)

	// External providers
	ExternalCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_call_duration_seconds",
			Help:    "Duration of calls to external completion and search providers",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
		},
		[]string{"provider", "outcome"},
	)

	ExternalCallRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_call_retries_total",
			Help: "Retries issued for transient provider errors",
		},
		[]string{"provider"},
	)

	// Circuit breakers
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Database
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPipelineRun records the outcome of one recommendation run.
func RecordPipelineRun(outcome string, duration time.Duration, returned int) {
	PipelineRuns.WithLabelValues(outcome).Inc()
	PipelineDuration.Observe(duration.Seconds())
	if outcome == "ok" || outcome == "no_goals" {
		RecommendationsReturned.Observe(float64(returned))
	}
}

// RecordSynthesisFallback counts a fallback (full or padding) by reason.
func RecordSynthesisFallback(reason string) {
	SynthesisFallbacks.WithLabelValues(reason).Inc()
}

// RecordSearchTermFailure counts one failed search term.
func RecordSearchTermFailure() {
	SearchTermFailures.Inc()
}

// RecordCandidateFiltered counts one candidate dropped by the dedup filter.
func RecordCandidateFiltered(reason string) {
	CandidatesFiltered.WithLabelValues(reason).Inc()
}

// RecordExternalCall records the latency of a provider call.
func RecordExternalCall(provider string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	ExternalCallDuration.WithLabelValues(provider, outcome).Observe(duration.Seconds())
}

// RecordExternalRetry counts a retry against a provider.
func RecordExternalRetry(provider string) {
	ExternalCallRetries.WithLabelValues(provider).Inc()
}

// RecordDBQuery records a DuckDB query.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}
