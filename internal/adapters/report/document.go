package report

import (
	"strings"

	"travel_planner/internal/domain"
)

// Document is the render-ready form of a plan: plain text organized into
// sections, tier groups and items. Building one is pure and deterministic;
// writers only lay it out.
type Document struct {
	Destination string
	Date        string
	Summary     []string
	Sections    []Section
	Note        string // set when parts of the plan came from demo data
}

type Section struct {
	Title  string
	Intro  string
	Groups []Group
}

type Group struct {
	Title string
	Items []Item
}

type Item struct {
	Title  string
	Detail []string
}

func BuildDocument(plan *domain.TravelPlan) *Document {
	doc := &Document{
		Destination: plan.Destination,
		Date:        plan.GeneratedAt.Format("January 2, 2006"),
		Summary:     plainLines(plan.Summary),
	}
	if len(doc.Summary) == 0 {
		doc.Summary = []string{"Summary not available."}
	}
	doc.Sections = []Section{
		hotelSection(plan.Hotels),
		diningSection(plan.Dining),
		activitySection(plan.Activities),
		practicalSection(plan),
	}
	if plan.Degraded {
		doc.Note = "Parts of this guide come from demo data; verify prices and hours before booking."
	}
	return doc
}

func hotelSection(b domain.CategoryBundle) Section {
	s := Section{
		Title:  "Accommodation",
		Intro:  strings.TrimSpace(b.Notes),
		Groups: tierGroups(b),
	}
	if len(s.Groups) == 0 && s.Intro == "" {
		s.Intro = "No hotel recommendations were available for this destination."
	}
	return s
}

func diningSection(b domain.CategoryBundle) Section {
	s := Section{
		Title:  "Dining",
		Intro:  strings.TrimSpace(b.Notes),
		Groups: tierGroups(b),
	}
	if len(b.Extras) > 0 {
		g := Group{Title: "Local Specialties and Experiences"}
		for _, e := range b.Extras {
			g.Items = append(g.Items, Item{Title: e})
		}
		s.Groups = append(s.Groups, g)
	}
	if len(s.Groups) == 0 && s.Intro == "" {
		s.Intro = "No dining recommendations were available for this destination."
	}
	return s
}

func activitySection(b domain.CategoryBundle) Section {
	s := Section{
		Title:  "Activities",
		Intro:  strings.TrimSpace(b.Notes),
		Groups: tierGroups(b),
	}
	if len(s.Groups) == 0 && s.Intro == "" {
		s.Intro = "No activity recommendations were available for this destination."
	}
	return s
}

// practicalSection collects trip-wide tips; the activity pipeline is their
// usual source.
func practicalSection(plan *domain.TravelPlan) Section {
	s := Section{Title: "Practical Information"}
	g := Group{}
	for _, tip := range plan.Activities.Extras {
		g.Items = append(g.Items, Item{Title: tip})
	}
	if len(g.Items) == 0 {
		g.Items = append(g.Items, Item{Title: "No practical tips were recorded for this destination."})
	}
	s.Groups = []Group{g}
	return s
}

// tierGroups buckets results into ascending tier groups, skipping empty tiers.
func tierGroups(b domain.CategoryBundle) []Group {
	var out []Group
	for _, tier := range domain.Tiers() {
		g := Group{Title: domain.TierLabel(b.Category, tier)}
		for _, r := range b.Results {
			if r.Tier == tier {
				g.Items = append(g.Items, resultItem(r))
			}
		}
		if len(g.Items) > 0 {
			out = append(out, g)
		}
	}
	return out
}

func resultItem(r domain.CategoryResult) Item {
	title := r.Name
	if pt := strings.TrimSpace(r.PriceText); pt != "" {
		title += " (" + pt + ")"
	}
	it := Item{Title: title}
	if d := strings.TrimSpace(r.Description); d != "" {
		it.Detail = append(it.Detail, d)
	} else {
		it.Detail = append(it.Detail, "Details not available.")
	}
	if r.Kind != "" {
		it.Detail = append(it.Detail, "Type: "+r.Kind)
	}
	if r.Location != "" {
		it.Detail = append(it.Detail, "Location: "+r.Location)
	}
	if len(r.Highlights) > 0 {
		it.Detail = append(it.Detail, "Highlights: "+strings.Join(r.Highlights, ", "))
	}
	if r.Practical != "" {
		it.Detail = append(it.Detail, "Practical: "+r.Practical)
	}
	return it
}

// plainLines strips light markdown (bold markers, heading hashes) so summary
// text renders cleanly in a flat document. Blank lines collapse to one.
func plainLines(md string) []string {
	var out []string
	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimSpace(strings.ReplaceAll(raw, "**", ""))
		for strings.HasPrefix(line, "#") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
		if line == "" {
			if n := len(out); n > 0 && out[n-1] != "" {
				out = append(out, "")
			}
			continue
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
