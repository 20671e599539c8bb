package domain

import "context"

// ResearchAgent is the model-backed pipeline behind each category.
type ResearchAgent interface {
	// Search gathers free-text research notes for a category at a destination.
	Search(ctx context.Context, cat Category, destination string) (string, error)
	// Structure validates raw notes into the category's structured document.
	Structure(ctx context.Context, cat Category, notes string) (map[string]any, error)
	// Summarize condenses merged bundles into a short traveller briefing.
	Summarize(ctx context.Context, destination string, bundles []CategoryBundle) (string, error)
}

// FallbackProvider serves canned demo content when live research is unavailable.
type FallbackProvider interface {
	Bundle(destination string, cat Category) CategoryBundle
	Intro(destination string) string
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ReportWriter renders a finished plan to disk and returns the file path.
type ReportWriter interface {
	Write(ctx context.Context, plan *TravelPlan) (string, error)
}
