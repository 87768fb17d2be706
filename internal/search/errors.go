// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package search

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/tomtom215/learnloop/internal/circuitbreaker"
)

var (
	// ErrQuotaExceeded is returned when the API key has no quota left.
	ErrQuotaExceeded = errors.New("search quota exceeded")
	// ErrInvalidRequest is returned for 4xx responses other than quota errors.
	ErrInvalidRequest = errors.New("search request rejected")
)

var quotaReasons = map[string]bool{
	"quotaExceeded":      true,
	"dailyLimitExceeded": true,
}

// classify wraps provider errors with a package sentinel where one applies.
func classify(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	for _, item := range apiErr.Errors {
		if quotaReasons[item.Reason] {
			return errors.Join(ErrQuotaExceeded, err)
		}
	}
	if apiErr.Code >= 400 && apiErr.Code < 500 && apiErr.Code != http.StatusTooManyRequests {
		return errors.Join(ErrInvalidRequest, err)
	}
	return err
}

// isTransient reports whether a retry may succeed.
func isTransient(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, circuitbreaker.ErrOpen):
		return false
	case errors.Is(err, ErrQuotaExceeded), errors.Is(err, ErrInvalidRequest):
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= 500 || apiErr.Code == http.StatusTooManyRequests
	}
	// Transport-level failure.
	return true
}
