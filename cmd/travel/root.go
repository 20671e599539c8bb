package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"travel_planner/internal/adapters/console"
	"travel_planner/internal/adapters/fallback"
	"travel_planner/internal/adapters/gemini"
	redisad "travel_planner/internal/adapters/redis"
	"travel_planner/internal/adapters/report"
	"travel_planner/internal/app"
	"travel_planner/internal/domain"
)

var plain bool

var rootCmd = &cobra.Command{
	Use:   "travel",
	Short: "Travel is an agent-backed trip planning console",
	Long: `Travel researches hotels, dining, and activities for a destination,
merges the results into a single plan, and can write the plan out as a
PDF travel guide. Without an API key it serves a built-in demo guide.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

// Execute runs the CLI until completion or signal.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "plain output: no spinner, no styled markdown")
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	planner, cleanup, err := buildPlanner(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	console.PrintBanner(out)
	fmt.Fprintln(out, "Welcome! Tell me where you want to go and I'll plan the trip.")

	var render func(string) string
	if !plain {
		render = console.NewRenderer()
	}
	session := console.NewSession(planner, report.NewWriter(cfg.OutputDir), cmd.InOrStdin(), out, render, !plain)
	if err := session.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// buildPlanner wires the planner from config. A missing API key is not an
// error: the planner runs everything from the built-in demo guide.
func buildPlanner(ctx context.Context) (*app.Planner, func(), error) {
	fb, err := fallback.New()
	if err != nil {
		return nil, nil, err
	}

	var agent domain.ResearchAgent
	client, err := gemini.New(ctx, cfg.GeminiKey, cfg.Model, cfg.AgentRPS)
	switch {
	case err == nil:
		agent = client
	case errors.Is(err, gemini.ErrNoCredential):
		log.Warn().Msg("planning from the built-in demo guide")
	default:
		return nil, nil, err
	}

	cleanup := func() {}
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		cache = rc
		cleanup = func() { _ = rc.Close() }
	}

	return app.NewPlanner(agent, fb, cache, cfg.AgentTimeout, cfg.CacheTTL), cleanup, nil
}
