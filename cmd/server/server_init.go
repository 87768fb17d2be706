// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/learnloop/internal/api"
	"github.com/tomtom215/learnloop/internal/auth"
	"github.com/tomtom215/learnloop/internal/config"
	"github.com/tomtom215/learnloop/internal/logging"
)

// newHTTPServer builds the router and its middleware from cfg.
func newHTTPServer(cfg *config.Config, recommender api.Recommender, db api.Pinger) (*http.Server, error) {
	authMiddleware, err := newAuthMiddleware(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	chiMW := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})

	handler := api.NewHandler(recommender, db)
	router := api.NewRouter(handler, authMiddleware, chiMW)

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + cfg.Recommend.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}, nil
}

func newAuthMiddleware(cfg *config.Config) (*auth.Middleware, error) {
	switch cfg.Security.AuthMode {
	case auth.ModeJWT:
		jwtManager, err := auth.NewJWTManager(&cfg.Security)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize JWT manager: %w", err)
		}
		logging.Info().Msg("JWT authentication enabled")
		return auth.NewMiddleware(jwtManager, auth.ModeJWT), nil
	case auth.ModeNone:
		logging.Warn().Msg("SECURITY WARNING: Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("Any caller may request recommendations for any user")
		return auth.NewMiddleware(nil, auth.ModeNone), nil
	default:
		return nil, fmt.Errorf("unsupported AUTH_MODE %q", cfg.Security.AuthMode)
	}
}
