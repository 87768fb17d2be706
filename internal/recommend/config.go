// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"errors"
	"fmt"
	"time"
)

// TermCount is the number of search terms used per request, whether they
// come from the completion service or the fallback list.
const TermCount = 3

// MaxTermLength caps a single search term, in runes.
const MaxTermLength = 120

// Config tunes the pipeline.
type Config struct {
	// ResultsPerTerm is the provider result cap for each search call.
	ResultsPerTerm int `json:"results_per_term"`

	// LongFormOnly restricts searches to long-form videos.
	LongFormOnly bool `json:"long_form_only"`

	// ConcurrentFanout issues the search calls in parallel.
	// Output order is identical either way.
	ConcurrentFanout bool `json:"concurrent_fanout"`

	// CompletionTimeout bounds the single completion call.
	CompletionTimeout time.Duration `json:"completion_timeout"`

	// SearchTimeout bounds each search call.
	SearchTimeout time.Duration `json:"search_timeout"`

	// RequestTimeout bounds the whole pipeline run. Zero disables it.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		ResultsPerTerm:    4,
		LongFormOnly:      true,
		ConcurrentFanout:  true,
		CompletionTimeout: 15 * time.Second,
		SearchTimeout:     10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.ResultsPerTerm < 1 || c.ResultsPerTerm > 50 {
		errs = append(errs, fmt.Errorf("results_per_term must be between 1 and 50, got %d", c.ResultsPerTerm))
	}
	if c.CompletionTimeout <= 0 {
		errs = append(errs, fmt.Errorf("completion_timeout must be positive, got %s", c.CompletionTimeout))
	}
	if c.SearchTimeout <= 0 {
		errs = append(errs, fmt.Errorf("search_timeout must be positive, got %s", c.SearchTimeout))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout))
	}
	return errors.Join(errs...)
}
