// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	validAuthModes  = map[string]bool{"none": true, "jwt": true}
	validLogLevels  = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "console": true}
	validProviders  = map[string]bool{"gemini": true, "ollama": true}
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
	minJWTSecretLength   = 32
	maxResultsPerTerm    = 50
	maxRetryAttempts     = 5
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	for _, validate := range []func() error{
		c.validateServer,
		c.validateDatabase,
		c.validateSecurity,
		c.validateLogging,
		c.validateCompletion,
		c.validateSearch,
		c.validateRecommend,
	} {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !validAuthModes[c.Security.AuthMode] {
		return fmt.Errorf("AUTH_MODE must be one of: none, jwt")
	}
	if c.Security.AuthMode == "none" && c.IsProduction() {
		return fmt.Errorf("AUTH_MODE=none is not allowed when ENVIRONMENT=production")
	}
	if c.Security.AuthMode == "jwt" {
		if c.Security.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is jwt")
		}
		if len(c.Security.JWTSecret) < minJWTSecretLength {
			return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength)
		}
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateCompletion() error {
	cc := c.Completion
	if !validProviders[cc.Provider] {
		return fmt.Errorf("COMPLETION_PROVIDER must be one of: gemini, ollama")
	}
	if cc.Model == "" {
		return fmt.Errorf("COMPLETION_MODEL is required")
	}
	switch cc.Provider {
	case "gemini":
		if cc.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when COMPLETION_PROVIDER is gemini")
		}
	case "ollama":
		if err := validateHTTPURL(cc.BaseURL); err != nil {
			return fmt.Errorf("OLLAMA_URL is invalid: %w", err)
		}
	}
	if cc.Timeout <= 0 {
		return fmt.Errorf("COMPLETION_TIMEOUT must be positive")
	}
	if cc.Temperature < 0 || cc.Temperature > 2 {
		return fmt.Errorf("COMPLETION_TEMPERATURE must be between 0 and 2")
	}
	if cc.MaxOutputTokens < 0 {
		return fmt.Errorf("COMPLETION_MAX_TOKENS must not be negative")
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.APIKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY is required")
	}
	if c.Search.Timeout <= 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}
	if c.Search.RetryAttempts < 0 || c.Search.RetryAttempts > maxRetryAttempts {
		return fmt.Errorf("SEARCH_RETRY_ATTEMPTS must be between 0 and %d", maxRetryAttempts)
	}
	if c.Search.RetryAttempts > 0 && c.Search.RetryDelay <= 0 {
		return fmt.Errorf("SEARCH_RETRY_DELAY must be positive when retries are enabled")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.ResultsPerTerm < 1 || c.Recommend.ResultsPerTerm > maxResultsPerTerm {
		return fmt.Errorf("RECOMMEND_RESULTS_PER_TERM must be between 1 and %d", maxResultsPerTerm)
	}
	if c.Recommend.RequestTimeout < 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must not be negative")
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
