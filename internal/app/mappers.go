package app

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"travel_planner/internal/adapters/observability"
	"travel_planner/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Validation agents are schema-constrained, but models drift: keys vary and
// some return the tier-grouped shape instead of a flat list. The registries
// absorb both.

var hotelAliases = map[string][]string{
	"items":  {"hotels", "items", "results", "options"},
	"tiered": {"budget_hotels", "midrange_hotels", "luxury_hotels"},
	"notes":  {"location_notes", "notes", "area_notes"},
}

var restaurantAliases = map[string][]string{
	"items":   {"restaurants", "items", "results", "options"},
	"tiered":  {"budget_dining", "midrange_dining", "fine_dining"},
	"notes":   {"notes", "dining_notes"},
	"extras":  {"local_specialties", "specialties"},
	"extras2": {"unique_experiences", "experiences"},
}

var activityAliases = map[string][]string{
	"items": {"activities", "items", "results", "options"},
	"tiered": {
		"must_see_attractions", "cultural_experiences", "outdoor_activities",
		"entertainment_nightlife", "local_experiences",
	},
	"notes":  {"notes"},
	"extras": {"practical_tips", "tips"},
}

var itemAliases = map[string][]string{
	"name":        {"name", "title", "hotel_name", "restaurant_name", "activity_name"},
	"price":       {"price_value", "price", "cost", "price_usd"},
	"price_text":  {"price_range", "cost_range", "price_text", "price_per_night", "price_per_person"},
	"description": {"description", "summary", "details"},
	"location":    {"location", "location_notes", "neighborhood", "area"},
	"kind":        {"kind", "cuisine", "cuisine_type", "category", "type"},
	"highlights":  {"highlights", "signature_dishes", "features", "dishes"},
	"practical":   {"practical_info", "practical", "booking_info"},
}

func aliasesFor(cat domain.Category) map[string][]string {
	switch cat {
	case domain.CategoryHotel:
		return hotelAliases
	case domain.CategoryRestaurant:
		return restaurantAliases
	default:
		return activityAliases
	}
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// firstSliceStrings: accept []any with either strings or {name/text}.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		if raw, ok := lookupAny(m, k).([]any); ok {
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if t != "" {
						out = append(out, t)
					}
				case map[string]any:
					if n, ok := t["name"].(string); ok && n != "" {
						out = append(out, n)
						continue
					}
					if n, ok := t["text"].(string); ok && n != "" {
						out = append(out, n)
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// sliceMaps returns the object list at path, if any.
func sliceMaps(m map[string]any, path string) []map[string]any {
	raw, ok := lookupAny(m, path).([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if obj, ok := it.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// firstSliceMaps: first non-empty object list at any of the paths.
func firstSliceMaps(m map[string]any, paths ...string) []map[string]any {
	for _, k := range paths {
		if out := sliceMaps(m, k); len(out) > 0 {
			return out
		}
	}
	return nil
}

/********** price resolution **********/

var numberRx = regexp.MustCompile(`\d+(?:\.\d+)?`)

// parsePriceText extracts a representative USD figure from price wording.
// Ranges collapse to their midpoint. "Free" means zero only when no number
// is present, so "$12 entrance, free on Sundays" stays 12.
func parsePriceText(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(s, ",", "")
	nums := numberRx.FindAllString(cleaned, 2)
	switch len(nums) {
	case 0:
		low := strings.ToLower(s)
		if strings.Contains(low, "free") || strings.Contains(low, "complimentary") || strings.Contains(low, "no charge") {
			return 0, true
		}
		return 0, false
	case 1:
		f, err := strconv.ParseFloat(nums[0], 64)
		return f, err == nil
	default:
		a, errA := strconv.ParseFloat(nums[0], 64)
		b, errB := strconv.ParseFloat(nums[1], 64)
		if errA != nil || errB != nil {
			return 0, false
		}
		return (a + b) / 2, true
	}
}

// resolvePrice finds a usable price: numeric fields win, then price wording.
func resolvePrice(m map[string]any) (float64, string, bool) {
	text := strings.TrimSpace(deref(firstNonEmptyAlias(m, itemAliases, "price_text")))
	if f := getFloatFlexible(m, itemAliases["price"]...); f != nil && *f >= 0 {
		return *f, text, true
	}
	if text != "" {
		if f, ok := parsePriceText(text); ok {
			return f, text, true
		}
	}
	// price fields holding wording instead of a number
	for _, p := range itemAliases["price"] {
		if s, ok := lookupAny(m, p).(string); ok && s != "" {
			if f, ok := parsePriceText(s); ok {
				if text == "" {
					text = strings.TrimSpace(s)
				}
				return f, text, true
			}
		}
	}
	return 0, text, false
}

/********** bundle mapper **********/

// mapResult maps one structured item. Items without a resolvable name and
// price are rejected; the caller counts the drop.
func mapResult(cat domain.Category, m map[string]any) (domain.CategoryResult, bool) {
	name := strings.TrimSpace(deref(firstNonEmptyAlias(m, itemAliases, "name")))
	if name == "" {
		return domain.CategoryResult{}, false
	}
	price, text, ok := resolvePrice(m)
	if !ok {
		return domain.CategoryResult{}, false
	}
	if text == "" {
		text = fmt.Sprintf("$%.0f", price)
	}
	return domain.CategoryResult{
		Name:        name,
		Tier:        domain.TierFor(cat, price),
		Price:       price,
		PriceText:   text,
		Description: strings.TrimSpace(deref(firstNonEmptyAlias(m, itemAliases, "description"))),
		Location:    strings.TrimSpace(deref(firstNonEmptyAlias(m, itemAliases, "location"))),
		Kind:        strings.TrimSpace(deref(firstNonEmptyAlias(m, itemAliases, "kind"))),
		Highlights:  firstSliceStrings(m, itemAliases["highlights"]...),
		Practical:   strings.TrimSpace(deref(firstNonEmptyAlias(m, itemAliases, "practical"))),
	}, true
}

// mapBundle maps a validation document into a live bundle. An empty document
// still yields a valid (empty) bundle; the planner decides what to do with it.
func mapBundle(cat domain.Category, doc map[string]any) domain.CategoryBundle {
	al := aliasesFor(cat)
	b := domain.CategoryBundle{
		Category: cat,
		Results:  []domain.CategoryResult{},
		Notes:    strings.TrimSpace(deref(firstNonEmptyAlias(doc, al, "notes"))),
		Origin:   domain.OriginLive,
	}
	for _, key := range []string{"extras", "extras2"} {
		if paths := al[key]; len(paths) > 0 {
			b.Extras = append(b.Extras, firstSliceStrings(doc, paths...)...)
		}
	}

	items := firstSliceMaps(doc, al["items"]...)
	if len(items) == 0 {
		// tier-grouped shape: concatenate the groups in ascending order
		for _, p := range al["tiered"] {
			items = append(items, sliceMaps(doc, p)...)
		}
	}
	for _, raw := range items {
		r, ok := mapResult(cat, raw)
		if !ok {
			observability.ObserveValidationDrop(string(cat))
			log.Debug().Str("category", string(cat)).Msg("dropping item without name or price")
			continue
		}
		b.Results = append(b.Results, r)
	}
	return b
}
