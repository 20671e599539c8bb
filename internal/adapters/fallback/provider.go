package fallback

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"travel_planner/internal/domain"
)

//go:embed data.yaml
var rawData []byte

// Provider serves the embedded demo dataset. A few destinations get curated
// profiles; everything else falls back to a generic starter guide.
type Provider struct {
	ds dataset
}

type dataset struct {
	Profiles []profile `yaml:"profiles"`
	Default  profile   `yaml:"default"`
}

type profile struct {
	Keys       []string `yaml:"keys"`
	Display    string   `yaml:"display"`
	Intro      string   `yaml:"intro"`
	Hotels     section  `yaml:"hotels"`
	Dining     section  `yaml:"dining"`
	Activities section  `yaml:"activities"`
}

type section struct {
	Notes  string   `yaml:"notes"`
	Extras []string `yaml:"extras"`
	Items  []item   `yaml:"items"`
}

type item struct {
	Name        string   `yaml:"name"`
	Price       float64  `yaml:"price"`
	PriceText   string   `yaml:"price_text"`
	Description string   `yaml:"description"`
	Location    string   `yaml:"location"`
	Kind        string   `yaml:"kind"`
	Highlights  []string `yaml:"highlights"`
	Practical   string   `yaml:"practical"`
}

func New() (*Provider, error) {
	var ds dataset
	if err := yaml.Unmarshal(rawData, &ds); err != nil {
		return nil, fmt.Errorf("fallback: parse embedded data: %w", err)
	}
	if len(ds.Default.Hotels.Items) == 0 {
		return nil, fmt.Errorf("fallback: embedded data has no default profile")
	}
	return &Provider{ds: ds}, nil
}

// Bundle builds a fresh fallback bundle for the category. Callers own the
// returned slices; repeated calls never share memory.
func (p *Provider) Bundle(destination string, cat domain.Category) domain.CategoryBundle {
	prof := p.match(destination)
	var sec section
	switch cat {
	case domain.CategoryHotel:
		sec = prof.Hotels
	case domain.CategoryRestaurant:
		sec = prof.Dining
	default:
		sec = prof.Activities
	}

	b := domain.CategoryBundle{
		Category: cat,
		Results:  make([]domain.CategoryResult, 0, len(sec.Items)),
		Notes:    sec.Notes,
		Origin:   domain.OriginFallback,
	}
	if len(sec.Extras) > 0 {
		b.Extras = append([]string(nil), sec.Extras...)
	}
	for _, it := range sec.Items {
		b.Results = append(b.Results, domain.CategoryResult{
			Name:        it.Name,
			Tier:        domain.TierFor(cat, it.Price),
			Price:       it.Price,
			PriceText:   it.PriceText,
			Description: it.Description,
			Location:    it.Location,
			Kind:        it.Kind,
			Highlights:  append([]string(nil), it.Highlights...),
			Practical:   it.Practical,
		})
	}
	return b
}

// Intro returns the profile's opening line, with the generic profile
// templating in the requested destination.
func (p *Provider) Intro(destination string) string {
	prof := p.match(destination)
	return strings.ReplaceAll(prof.Intro, "{destination}", strings.TrimSpace(destination))
}

// match picks the first profile whose key appears in the destination.
func (p *Provider) match(destination string) profile {
	d := strings.ToLower(destination)
	for _, prof := range p.ds.Profiles {
		for _, k := range prof.Keys {
			if strings.Contains(d, k) {
				return prof
			}
		}
	}
	return p.ds.Default
}
