// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

// Command learnctl runs parts of the recommendation pipeline from the shell
// against the same configuration as the server.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/learnloop/internal/app"
	"github.com/tomtom215/learnloop/internal/config"
	"github.com/tomtom215/learnloop/internal/logging"
	"github.com/tomtom215/learnloop/internal/models"
	"github.com/tomtom215/learnloop/internal/recommend"
)

// recommender is the part of the engine the recommend command needs.
type recommender interface {
	Recommend(ctx context.Context, userID string) ([]models.VideoCandidate, error)
}

// cliDeps are swapped out in tests.
type cliDeps struct {
	loadConfig   func() (*config.Config, error)
	newCompleter func(ctx context.Context, cfg *config.Config) (recommend.Completer, error)
	newEngine    func(ctx context.Context, cfg *config.Config, store app.Store) (recommender, error)
}

func defaultDeps() cliDeps {
	return cliDeps{
		loadConfig:   config.Load,
		newCompleter: app.NewCompleter,
		newEngine: func(ctx context.Context, cfg *config.Config, store app.Store) (recommender, error) {
			return app.NewEngine(ctx, cfg, store)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd(defaultDeps()).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(deps cliDeps) *cobra.Command {
	root := &cobra.Command{
		Use:   "learnctl",
		Short: "Operate the Learnloop recommendation pipeline",
		Long: `learnctl reads the same configuration as the server (CONFIG_PATH,
config.yaml and environment variables) and runs pipeline stages directly.

Available commands:
  recommend - Build recommendations for one user
  terms     - Run only query synthesis for a list of goals
  seed      - Insert the demo dataset
  token     - Issue a bearer token for a user`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRecommendCmd(deps),
		newTermsCmd(deps),
		newSeedCmd(deps),
		newTokenCmd(deps),
	)
	return root
}

// loadConfig loads configuration and routes logs to stderr so stdout
// stays machine readable.
func loadConfig(deps cliDeps, cmd *cobra.Command) (*config.Config, error) {
	cfg, err := deps.loadConfig()
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: cmd.ErrOrStderr(),
	})
	return cfg, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
