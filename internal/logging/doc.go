// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

// Package logging provides the zerolog-based structured logger used across
// Learnloop.
//
// The global logger is configured once from main:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
// Request-scoped code should log through Ctx so that request and correlation
// IDs set by the HTTP middleware are attached to every event:
//
//	logging.Ctx(ctx).Warn().Err(err).Int("term_index", i).Msg("search term failed")
//
// Long-lived components take a child logger from WithComponent. Libraries that
// require log/slog (the suture supervisor) are bridged with NewSlogLogger.
//
// Environment variables (read through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
package logging
