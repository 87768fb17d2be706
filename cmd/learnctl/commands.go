// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/learnloop/internal/auth"
	"github.com/tomtom215/learnloop/internal/database"
	"github.com/tomtom215/learnloop/internal/logging"
	"github.com/tomtom215/learnloop/internal/models"
	"github.com/tomtom215/learnloop/internal/recommend"
)

type recommendOutput struct {
	Recommendations []models.VideoCandidate `json:"recommendations"`
}

type termsOutput struct {
	Terms  []string `json:"terms"`
	Source string   `json:"source"`
}

func newRecommendCmd(deps cliDeps) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Build recommendations for one user",
		Long: `Run the full pipeline once for --user-id and print the same JSON body
GET /recommendations would return.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(deps, cmd)
			if err != nil {
				return err
			}

			db, err := database.New(&cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := db.Close(); cerr != nil {
					logging.Warn().Err(cerr).Msg("Error closing database")
				}
			}()

			engine, err := deps.newEngine(cmd.Context(), cfg, db)
			if err != nil {
				return err
			}

			results, err := engine.Recommend(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("recommend for %s: %w", userID, err)
			}
			if results == nil {
				results = []models.VideoCandidate{}
			}
			return writeJSON(cmd.OutOrStdout(), recommendOutput{Recommendations: results})
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "user to build recommendations for")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func newTermsCmd(deps cliDeps) *cobra.Command {
	var completed, incomplete []string

	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Run only query synthesis",
		Long: `Ask the completion service for search terms for the given goals and
print the three terms used, including fallback or padding.`,
		Example: `  learnctl terms --completed "Learn Go basics" --incomplete "Build a REST API,Learn SQL"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(deps, cmd)
			if err != nil {
				return err
			}

			completer, err := deps.newCompleter(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			synth := recommend.NewSynthesizer(completer, cfg.Completion.Timeout)
			result := synth.Synthesize(cmd.Context(), recommend.GoalSummary{
				CompletedNames:  completed,
				IncompleteNames: incomplete,
			})
			return writeJSON(cmd.OutOrStdout(), termsOutput{
				Terms:  result.Terms,
				Source: string(result.Source),
			})
		},
	}

	cmd.Flags().StringSliceVar(&completed, "completed", nil, "completed goal names")
	cmd.Flags().StringSliceVar(&incomplete, "incomplete", nil, "incomplete goal names")
	return cmd
}

func newSeedCmd(deps cliDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(deps, cmd)
			if err != nil {
				return err
			}

			db, err := database.New(&cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := db.Close(); cerr != nil {
					logging.Warn().Err(cerr).Msg("Error closing database")
				}
			}()

			if err := db.SeedDemoData(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded demo data for user %s\n", database.DemoUserID)
			return err
		},
	}
}

func newTokenCmd(deps cliDeps) *cobra.Command {
	var userID, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token",
		Long:  `Sign a JWT with JWT_SECRET whose subject is --user-id.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(deps, cmd)
			if err != nil {
				return err
			}
			if role != auth.RoleUser && role != auth.RoleAdmin {
				return fmt.Errorf("role must be %s or %s, got %q", auth.RoleUser, auth.RoleAdmin, role)
			}

			manager, err := auth.NewJWTManager(&cfg.Security)
			if err != nil {
				return err
			}
			token, err := manager.GenerateToken(userID, role)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "token subject")
	cmd.Flags().StringVar(&role, "role", auth.RoleUser, "user or admin")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}
