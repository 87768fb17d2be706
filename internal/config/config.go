// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	Completion CompletionConfig `koanf:"completion"`
	Search     SearchConfig     `koanf:"search"`
	Recommend  RecommendConfig  `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path         string `koanf:"path"`
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"` // 0 = runtime.NumCPU()
	SeedDemoData bool   `koanf:"seed_demo_data"`
}

// SecurityConfig holds authentication and inbound rate-limit settings.
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"` // none, jwt
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CompletionConfig selects and tunes the text-completion service used for
// query synthesis.
type CompletionConfig struct {
	// Provider is gemini (Google GenAI) or ollama (local HTTP).
	Provider string `koanf:"provider"`
	// APIKey is required for gemini.
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"`
	// BaseURL is the Ollama server URL.
	BaseURL         string        `koanf:"base_url"`
	Timeout         time.Duration `koanf:"timeout"`
	Temperature     float64       `koanf:"temperature"`
	MaxOutputTokens int           `koanf:"max_output_tokens"`
}

// SearchConfig tunes the YouTube search provider.
type SearchConfig struct {
	APIKey        string        `koanf:"api_key"`
	LongFormOnly  bool          `koanf:"long_form_only"`
	Timeout       time.Duration `koanf:"timeout"`
	RetryAttempts int           `koanf:"retry_attempts"`
	RetryDelay    time.Duration `koanf:"retry_delay"`
}

// RecommendConfig tunes the recommendation pipeline.
type RecommendConfig struct {
	ResultsPerTerm   int           `koanf:"results_per_term"`
	ConcurrentFanout bool          `koanf:"concurrent_fanout"`
	RequestTimeout   time.Duration `koanf:"request_timeout"`
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	switch c.Server.Environment {
	case "production", "prod":
		return true
	default:
		return false
	}
}
