package domain

import "testing"

func TestTierForBoundaries(t *testing.T) {
	cases := []struct {
		cat   Category
		price float64
		want  PriceTier
	}{
		{CategoryHotel, 0, TierBudget},
		{CategoryHotel, 99.99, TierBudget},
		{CategoryHotel, 100, TierMidRange}, // boundary is lower-inclusive
		{CategoryHotel, 249.99, TierMidRange},
		{CategoryHotel, 250, TierLuxury},
		{CategoryHotel, 500, TierLuxury},

		{CategoryRestaurant, 10, TierBudget},
		{CategoryRestaurant, 25, TierMidRange},
		{CategoryRestaurant, 59.5, TierMidRange},
		{CategoryRestaurant, 60, TierLuxury},

		{CategoryActivity, 0, TierBudget}, // free admission
		{CategoryActivity, 19.99, TierBudget},
		{CategoryActivity, 20, TierMidRange},
		{CategoryActivity, 75, TierLuxury},
	}
	for _, c := range cases {
		if got := TierFor(c.cat, c.price); got != c.want {
			t.Errorf("TierFor(%s, %.2f) = %s, want %s", c.cat, c.price, got, c.want)
		}
	}
}

func TestTierForUnknownCategoryUsesActivityBounds(t *testing.T) {
	if got := TierFor(Category("spa"), 50); got != TierMidRange {
		t.Fatalf("got %s, want %s", got, TierMidRange)
	}
}

func TestTierLabel(t *testing.T) {
	cases := []struct {
		cat  Category
		tier PriceTier
		want string
	}{
		{CategoryHotel, TierBudget, "Budget Hotels (Under $100/night)"},
		{CategoryHotel, TierMidRange, "Mid-Range Hotels ($100-250/night)"},
		{CategoryHotel, TierLuxury, "Luxury Hotels ($250+/night)"},
		{CategoryRestaurant, TierBudget, "Budget Dining (Under $25/person)"},
		{CategoryRestaurant, TierMidRange, "Mid-Range Dining ($25-60/person)"},
		{CategoryRestaurant, TierLuxury, "Fine Dining ($60+/person)"},
		{CategoryActivity, TierBudget, "Budget Activities (Under $20/person)"},
		{CategoryActivity, TierMidRange, "Mid-Range Activities ($20-75/person)"},
		{CategoryActivity, TierLuxury, "Luxury Activities ($75+/person)"},
	}
	for _, c := range cases {
		if got := TierLabel(c.cat, c.tier); got != c.want {
			t.Errorf("TierLabel(%s, %s) = %q, want %q", c.cat, c.tier, got, c.want)
		}
	}
}

func TestBundlesOrder(t *testing.T) {
	p := TravelPlan{
		Hotels:     CategoryBundle{Category: CategoryHotel},
		Dining:     CategoryBundle{Category: CategoryRestaurant},
		Activities: CategoryBundle{Category: CategoryActivity},
	}
	bs := p.Bundles()
	for i, cat := range Categories() {
		if bs[i].Category != cat {
			t.Fatalf("bundle %d = %s, want %s", i, bs[i].Category, cat)
		}
	}
}
