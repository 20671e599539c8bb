package app

import (
	"strings"
	"testing"
	"time"

	"travel_planner/internal/domain"
)

func samplePlan() *domain.TravelPlan {
	return &domain.TravelPlan{
		ID:          "test",
		Destination: "Testville",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Hotels: domain.CategoryBundle{
			Category: domain.CategoryHotel,
			Results: []domain.CategoryResult{
				{Name: "Thrift Inn", Tier: domain.TierBudget, Price: 60, PriceText: "$50-70/night", Description: "Simple rooms. Shared kitchen."},
				{Name: "Palace", Tier: domain.TierLuxury, Price: 400, PriceText: "$400/night"},
			},
			Notes:  "Stay central.",
			Origin: domain.OriginLive,
		},
		Dining: domain.CategoryBundle{
			Category: domain.CategoryRestaurant,
			Results: []domain.CategoryResult{
				{Name: "Cheap Eats", Tier: domain.TierBudget, Price: 10, PriceText: "$8-12"},
			},
			Extras: []string{"Dumplings", "Night market", "Cheese", "Fourth thing"},
			Origin: domain.OriginLive,
		},
		Activities: domain.CategoryBundle{
			Category: domain.CategoryActivity,
			Results: []domain.CategoryResult{
				{Name: "Old Fort", Tier: domain.TierMidRange, Price: 25, PriceText: "$25"},
			},
			Extras: []string{"Book ahead", "Wear flat shoes"},
			Origin: domain.OriginLive,
		},
	}
}

func TestSynthesizeSummaryStructure(t *testing.T) {
	plan := samplePlan()
	got := SynthesizeSummary(plan, "Welcome to Testville.")

	for _, want := range []string{
		"Welcome to Testville.",
		"**ACCOMMODATION HIGHLIGHTS**",
		"- Budget: Thrift Inn - Simple rooms ($50-70/night)",
		"- Luxury: Palace ($400/night)",
		"**DINING HIGHLIGHTS**",
		"- Must try: Dumplings; Night market; Cheese",
		"**TOP ACTIVITIES**",
		"- Mid-range: Old Fort ($25)",
		"**QUICK TIPS**",
		"- Book ahead",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Fourth thing") {
		t.Error("must-try list should stop at three entries")
	}
	if strings.Contains(got, "offline demo guide") {
		t.Error("live plan should not carry the degraded note")
	}
}

func TestSynthesizeSummaryDegradedNote(t *testing.T) {
	plan := samplePlan()
	plan.Degraded = true
	got := SynthesizeSummary(plan, "")
	if !strings.Contains(got, "offline demo guide") {
		t.Errorf("degraded note missing in:\n%s", got)
	}
}

func TestSynthesizeSummaryTipsFallBackToHotelNotes(t *testing.T) {
	plan := samplePlan()
	plan.Activities.Extras = nil
	got := SynthesizeSummary(plan, "")
	if !strings.Contains(got, "- Stay central.") {
		t.Errorf("hotel notes should back the tips section in:\n%s", got)
	}
}

func TestSynthesizeSummarySkipsEmptyBundles(t *testing.T) {
	plan := samplePlan()
	plan.Dining.Results = nil
	got := SynthesizeSummary(plan, "")
	if strings.Contains(got, "**DINING HIGHLIGHTS**") {
		t.Error("empty bundle should not produce a section")
	}
}
