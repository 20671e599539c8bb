package main

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travel_planner/internal/adapters/fallback"
	"travel_planner/internal/adapters/gemini"
	"travel_planner/internal/adapters/observability"
	redisad "travel_planner/internal/adapters/redis"
	"travel_planner/internal/adapters/report"
	"travel_planner/internal/app"
	"travel_planner/internal/domain"
	"travel_planner/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	destinations := os.Args[1:]
	if len(destinations) == 0 {
		log.Fatal().Msg("usage: bulkplan <destination> [destination ...]")
	}

	log.Info().
		Str("model", cfg.Model).
		Int("workers", cfg.Workers).
		Int("destinations", len(destinations)).
		Msg("bulkplan starting")

	if cfg.Telemetry {
		observability.Serve(cfg.MetricsAddr)
	}

	fb, err := fallback.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load demo guide data")
	}

	var agent domain.ResearchAgent
	client, err := gemini.New(ctx, cfg.GeminiKey, cfg.Model, cfg.AgentRPS)
	if err == nil {
		agent = client
	} else if errors.Is(err, gemini.ErrNoCredential) {
		log.Warn().Msg("planning from the built-in demo guide")
	} else {
		log.Fatal().Err(err).Msg("failed to initialize research agent")
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	planner := app.NewPlanner(agent, fb, cache, cfg.AgentTimeout, cfg.CacheTTL)
	writer := report.NewWriter(cfg.OutputDir)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, dest := range destinations {
		dest := dest

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(destination string) {
			defer wg.Done()
			defer sem.Release(int64(1))

			plan, err := planner.Plan(ctx, destination)
			if err != nil {
				log.Warn().Str("destination", destination).Err(err).Msg("plan failed")
				return
			}
			path, err := writer.Write(ctx, plan)
			if err != nil {
				log.Warn().Str("destination", destination).Err(err).Msg("guide write failed")
				return
			}
			log.Info().Str("destination", destination).Str("guide", path).Bool("degraded", plan.Degraded).Msg("guide ok")
		}(dest)
	}

	wg.Wait()
	log.Info().Msg("bulkplan completed")
}
