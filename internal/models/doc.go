// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

// Package models holds the data types shared between the store, provider,
// pipeline and HTTP layers.
//
// VideoCandidate is the only type with custom JSON handling: it carries the
// provider's original search item and re-emits it unmodified, so fields the
// pipeline never inspects still reach API clients.
package models
