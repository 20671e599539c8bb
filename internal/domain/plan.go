package domain

import "time"

// Category names one of the three research pipelines that make up a plan.
type Category string

const (
	CategoryHotel      Category = "hotel"
	CategoryRestaurant Category = "restaurant"
	CategoryActivity   Category = "activity"
)

// Categories returns every pipeline category in presentation order.
func Categories() [3]Category {
	return [3]Category{CategoryHotel, CategoryRestaurant, CategoryActivity}
}

// Origin records where a bundle's data came from.
type Origin string

const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
	OriginCache    Origin = "cache"
)

// CategoryResult is one validated recommendation: a hotel, a restaurant
// or an activity, already priced and bucketed into a tier.
type CategoryResult struct {
	Name        string
	Tier        PriceTier
	Price       float64 // representative nightly / per-person price in USD
	PriceText   string  // original price wording, e.g. "$120-180/night"
	Description string
	Location    string
	Kind        string   // cuisine for dining, category for activities
	Highlights  []string // signature dishes, notable features
	Practical   string   // hours, booking notes, transport hints
}

// CategoryBundle holds everything one pipeline produced for a destination.
type CategoryBundle struct {
	Category Category
	Results  []CategoryResult
	Notes    string   // practical tips for the category
	Extras   []string // local specialties, unique experiences
	Origin   Origin
}

// TravelPlan is the merged output of all three pipelines.
type TravelPlan struct {
	ID          string
	Destination string
	GeneratedAt time.Time
	Hotels      CategoryBundle
	Dining      CategoryBundle
	Activities  CategoryBundle
	Summary     string
	ReportPath  string
	Degraded    bool // at least one bundle fell back to canned data
}

// Bundles returns the plan's bundles in presentation order.
func (p *TravelPlan) Bundles() [3]CategoryBundle {
	return [3]CategoryBundle{p.Hotels, p.Dining, p.Activities}
}
