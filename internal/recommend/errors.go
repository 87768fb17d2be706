// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import "errors"

var (
	// ErrUserNotFound is returned when the user ID does not resolve in the goal store.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoUsableTerms is returned by ParseSearchTerms when nothing survives parsing.
	ErrNoUsableTerms = errors.New("completion produced no usable search terms")
)
