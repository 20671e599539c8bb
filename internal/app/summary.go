package app

import (
	"fmt"
	"strings"

	"travel_planner/internal/domain"
)

// SynthesizeSummary builds a deterministic briefing from the plan's bundles.
// It stands in for the summary agent when no backend is configured or the
// model call fails, so a plan never ships without a summary.
func SynthesizeSummary(plan *domain.TravelPlan, intro string) string {
	var b strings.Builder
	if intro = strings.TrimSpace(intro); intro != "" {
		b.WriteString(intro)
		b.WriteString("\n\n")
	}

	headers := map[domain.Category]string{
		domain.CategoryHotel:      "**ACCOMMODATION HIGHLIGHTS**",
		domain.CategoryRestaurant: "**DINING HIGHLIGHTS**",
		domain.CategoryActivity:   "**TOP ACTIVITIES**",
	}
	for _, bundle := range plan.Bundles() {
		if len(bundle.Results) == 0 {
			continue
		}
		b.WriteString(headers[bundle.Category])
		b.WriteString("\n")
		for _, tier := range domain.Tiers() {
			r, ok := pickTier(bundle.Results, tier)
			if !ok {
				continue
			}
			line := fmt.Sprintf("- %s: %s", tierShort(tier), r.Name)
			if d := firstSentence(r.Description); d != "" {
				line += " - " + d
			}
			line += fmt.Sprintf(" (%s)", r.PriceText)
			b.WriteString(line)
			b.WriteString("\n")
		}
		if bundle.Category == domain.CategoryRestaurant && len(bundle.Extras) > 0 {
			b.WriteString("- Must try: " + strings.Join(firstN(bundle.Extras, 3), "; "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if tips := quickTips(plan); len(tips) > 0 {
		b.WriteString("**QUICK TIPS**\n")
		for _, t := range tips {
			b.WriteString("- " + t)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if plan.Degraded {
		b.WriteString("Parts of this plan come from our offline demo guide; check current prices before booking.\n")
	}
	return strings.TrimSpace(b.String())
}

// pickTier returns the first result in the tier, keeping validation order.
func pickTier(rs []domain.CategoryResult, tier domain.PriceTier) (domain.CategoryResult, bool) {
	for _, r := range rs {
		if r.Tier == tier {
			return r, true
		}
	}
	return domain.CategoryResult{}, false
}

func tierShort(t domain.PriceTier) string {
	switch t {
	case domain.TierBudget:
		return "Budget"
	case domain.TierMidRange:
		return "Mid-range"
	default:
		return "Luxury"
	}
}

// firstSentence trims a description to its opening sentence.
func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i]
	}
	return strings.TrimSuffix(s, ".")
}

func firstN(ss []string, n int) []string {
	if len(ss) <= n {
		return ss
	}
	return ss[:n]
}

// quickTips prefers the activity tips; hotel area notes are the backstop.
func quickTips(plan *domain.TravelPlan) []string {
	if tips := firstN(plan.Activities.Extras, 3); len(tips) > 0 {
		return tips
	}
	if n := strings.TrimSpace(plan.Hotels.Notes); n != "" {
		return []string{n}
	}
	return nil
}
