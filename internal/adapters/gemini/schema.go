package gemini

import (
	"google.golang.org/genai"

	"travel_planner/internal/domain"
)

// Response schemas for the validation stage. Keys line up with the aliases
// the plan mapper resolves, so schema-conformant output maps losslessly.

func bundleSchema(cat domain.Category) *genai.Schema {
	switch cat {
	case domain.CategoryHotel:
		return hotelSchema()
	case domain.CategoryRestaurant:
		return restaurantSchema()
	default:
		return activitySchema()
	}
}

func hotelSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"hotels": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"price_value": {Type: genai.TypeNumber, Description: "Representative nightly price in USD."},
						"price_range": {Type: genai.TypeString, Description: "Original price wording, e.g. $120-180/night."},
						"description": {Type: genai.TypeString},
						"location":    {Type: genai.TypeString, Description: "Neighborhood or area."},
					},
					Required: []string{"name", "price_value"},
				},
			},
			"location_notes": {Type: genai.TypeString, Description: "Notes on staying areas across the destination."},
		},
		Required: []string{"hotels"},
	}
}

func restaurantSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"restaurants": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"cuisine":     {Type: genai.TypeString},
						"price_value": {Type: genai.TypeNumber, Description: "Typical price per person in USD."},
						"price_range": {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"location":    {Type: genai.TypeString},
						"signature_dishes": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
					},
					Required: []string{"name", "price_value"},
				},
			},
			"local_specialties": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"unique_experiences": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"restaurants"},
	}
}

func activitySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"activities": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":           {Type: genai.TypeString},
						"kind":           {Type: genai.TypeString, Description: "Attraction, Cultural, Outdoor, Entertainment, or Local."},
						"price_value":    {Type: genai.TypeNumber, Description: "Cost per person in USD. Zero for free."},
						"cost_range":     {Type: genai.TypeString},
						"description":    {Type: genai.TypeString},
						"practical_info": {Type: genai.TypeString, Description: "Hours, booking, transport."},
					},
					Required: []string{"name", "price_value"},
				},
			},
			"practical_tips": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"activities"},
	}
}
