package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"travel_planner/internal/adapters/observability"
	"travel_planner/internal/domain"
)

// Planner fans the three research pipelines out in parallel and merges them
// into a TravelPlan. Categories degrade independently: a failed pipeline
// serves canned data instead of failing the whole plan.
type Planner struct {
	agent    domain.ResearchAgent // nil runs everything from canned data
	fb       domain.FallbackProvider
	cache    domain.Cache // nil disables plan caching
	timeout  time.Duration
	cacheTTL time.Duration
}

func NewPlanner(agent domain.ResearchAgent, fb domain.FallbackProvider, cache domain.Cache, timeout, cacheTTL time.Duration) *Planner {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Planner{agent: agent, fb: fb, cache: cache, timeout: timeout, cacheTTL: cacheTTL}
}

// cacheKey normalizes the destination so "New  York" and "new york" share an entry.
func cacheKey(destination string) string {
	return "plan:" + strings.ToLower(strings.Join(strings.Fields(destination), " "))
}

// Plan assembles a travel plan for the destination. Only fully-live plans
// are cached; cached plans come back with their bundles marked accordingly.
func (p *Planner) Plan(ctx context.Context, destination string) (*domain.TravelPlan, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, domain.ErrNoDestination
	}
	start := time.Now()

	if p.agent != nil && p.cache != nil {
		var cached domain.TravelPlan
		if ok, err := p.cache.Get(ctx, cacheKey(destination), &cached); err == nil && ok {
			cached.Hotels.Origin = domain.OriginCache
			cached.Dining.Origin = domain.OriginCache
			cached.Activities.Origin = domain.OriginCache
			observability.ObservePlan("cache", time.Since(start))
			log.Info().Str("destination", destination).Msg("plan served from cache")
			return &cached, nil
		}
	}

	var bundles [3]domain.CategoryBundle
	var wg sync.WaitGroup
	for i, cat := range domain.Categories() {
		wg.Add(1)
		go func(i int, cat domain.Category) {
			defer wg.Done()
			bundles[i] = p.runPipeline(ctx, cat, destination)
		}(i, cat)
	}
	wg.Wait()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	plan := &domain.TravelPlan{
		ID:          uuid.NewString(),
		Destination: destination,
		GeneratedAt: time.Now().UTC(),
		Hotels:      bundles[0],
		Dining:      bundles[1],
		Activities:  bundles[2],
	}
	for _, b := range plan.Bundles() {
		if b.Origin != domain.OriginLive {
			plan.Degraded = true
			break
		}
	}
	p.summarize(ctx, plan)

	mode := "live"
	switch {
	case p.agent == nil:
		mode = "fallback"
	case plan.Degraded:
		mode = "degraded"
	}
	if mode == "live" && p.cache != nil {
		if err := p.cache.Set(ctx, cacheKey(destination), plan, int(p.cacheTTL.Seconds())); err != nil {
			log.Debug().Err(err).Msg("plan cache set failed")
		}
	}
	observability.ObservePlan(mode, time.Since(start))
	log.Info().Str("destination", destination).Str("mode", mode).Dur("took", time.Since(start)).Msg("plan assembled")
	return plan, nil
}

// runPipeline executes search then validation for one category, under its
// own deadline. Any failure, including zero usable results, degrades to the
// fallback bundle.
func (p *Planner) runPipeline(ctx context.Context, cat domain.Category, destination string) domain.CategoryBundle {
	if p.agent == nil {
		observability.ObserveFallback(string(cat), "no_backend")
		return p.fb.Bundle(destination, cat)
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	notes, err := p.agent.Search(ctx, cat, destination)
	if err != nil {
		log.Warn().Err(err).Str("category", string(cat)).Msg("search failed, serving fallback")
		observability.ObserveFallback(string(cat), "search_failed")
		return p.fb.Bundle(destination, cat)
	}
	doc, err := p.agent.Structure(ctx, cat, notes)
	if err != nil {
		log.Warn().Err(err).Str("category", string(cat)).Msg("validation failed, serving fallback")
		observability.ObserveFallback(string(cat), "structure_failed")
		return p.fb.Bundle(destination, cat)
	}
	b := mapBundle(cat, doc)
	if len(b.Results) == 0 {
		log.Warn().Str("category", string(cat)).Msg("validation kept no usable items, serving fallback")
		observability.ObserveFallback(string(cat), "empty_results")
		return p.fb.Bundle(destination, cat)
	}
	return b
}

// summarize prefers the summary agent and synthesizes locally when it
// cannot deliver.
func (p *Planner) summarize(ctx context.Context, plan *domain.TravelPlan) {
	if p.agent != nil {
		sctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()
		bundles := plan.Bundles()
		s, err := p.agent.Summarize(sctx, plan.Destination, bundles[:])
		if err == nil && strings.TrimSpace(s) != "" {
			plan.Summary = s
			return
		}
		if err != nil {
			log.Warn().Err(err).Msg("summary agent failed, synthesizing locally")
		}
	}
	plan.Summary = SynthesizeSummary(plan, p.fb.Intro(plan.Destination))
}
