// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

// Package config loads Learnloop configuration with Koanf v2.
//
// Sources are layered, highest priority last:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: CONFIG_PATH, then config.yaml / config.yml,
//     then /etc/learnloop/config.yaml
//  3. Environment variables, mapped explicitly by envTransformFunc so that
//     unrelated variables never leak into the configuration
//
// The loaded Config is validated before it is returned and is read-only
// afterwards.
//
// # Environment Variables
//
// Server: HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, ENVIRONMENT
//
// Database: DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS, SEED_DEMO_DATA
//
// Security: AUTH_MODE (none, jwt), JWT_SECRET, SESSION_TIMEOUT,
// RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
//
// Logging: LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// Completion: COMPLETION_PROVIDER (gemini, ollama), GEMINI_API_KEY,
// COMPLETION_MODEL, OLLAMA_URL, COMPLETION_TIMEOUT, COMPLETION_TEMPERATURE,
// COMPLETION_MAX_TOKENS
//
// Search: YOUTUBE_API_KEY, SEARCH_LONG_FORM_ONLY, SEARCH_TIMEOUT,
// SEARCH_RETRY_ATTEMPTS, SEARCH_RETRY_DELAY
//
// Recommend: RECOMMEND_RESULTS_PER_TERM, RECOMMEND_CONCURRENT_FANOUT,
// RECOMMEND_REQUEST_TIMEOUT
package config
