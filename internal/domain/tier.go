package domain

import "fmt"

// PriceTier buckets a result by cost so reports can group cheap to pricey.
type PriceTier string

const (
	TierBudget   PriceTier = "budget"
	TierMidRange PriceTier = "mid_range"
	TierLuxury   PriceTier = "luxury"
)

// Tiers returns the tiers in ascending price order.
func Tiers() [3]PriceTier {
	return [3]PriceTier{TierBudget, TierMidRange, TierLuxury}
}

// tierBounds holds the [budget/mid, mid/luxury) boundaries per category.
// Hotels are priced per night, the rest per person.
var tierBounds = map[Category][2]float64{
	CategoryHotel:      {100, 250},
	CategoryRestaurant: {25, 60},
	CategoryActivity:   {20, 75},
}

// TierFor buckets a price into a tier. Boundaries are lower-inclusive:
// a $100 hotel is mid-range, a $250 one is luxury.
func TierFor(cat Category, price float64) PriceTier {
	b, ok := tierBounds[cat]
	if !ok {
		b = tierBounds[CategoryActivity]
	}
	switch {
	case price < b[0]:
		return TierBudget
	case price < b[1]:
		return TierMidRange
	default:
		return TierLuxury
	}
}

// TierLabel renders the report heading for a category/tier pair,
// e.g. "Budget Hotels (Under $100/night)" or "Fine Dining ($60+/person)".
func TierLabel(cat Category, tier PriceTier) string {
	b, ok := tierBounds[cat]
	if !ok {
		b = tierBounds[CategoryActivity]
	}
	noun, unit := "Activities", "person"
	switch cat {
	case CategoryHotel:
		noun, unit = "Hotels", "night"
	case CategoryRestaurant:
		noun, unit = "Dining", "person"
	}
	switch tier {
	case TierBudget:
		return fmt.Sprintf("Budget %s (Under $%.0f/%s)", noun, b[0], unit)
	case TierMidRange:
		return fmt.Sprintf("Mid-Range %s ($%.0f-%.0f/%s)", noun, b[0], b[1], unit)
	default:
		if cat == CategoryRestaurant {
			return fmt.Sprintf("Fine Dining ($%.0f+/%s)", b[1], unit)
		}
		return fmt.Sprintf("Luxury %s ($%.0f+/%s)", noun, b[1], unit)
	}
}
