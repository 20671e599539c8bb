package gemini

import (
	"context"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"

	"travel_planner/internal/domain"
)

func TestNewRequiresKey(t *testing.T) {
	_, err := New(context.Background(), "", "gemini-2.0-flash", 2)
	if err != ErrNoCredential {
		t.Fatalf("err = %v, want ErrNoCredential", err)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
		{"```json\n[1,2]\n```\n", `[1,2]`},
	}
	for _, c := range cases {
		if got := stripFences(c.in); got != c.want {
			t.Errorf("stripFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBackoffBounds(t *testing.T) {
	for i := 0; i < 4; i++ {
		base := time.Duration(1<<i) * 200 * time.Millisecond
		d := backoff(i)
		if d < base || d > base+base/2 {
			t.Errorf("backoff(%d) = %v, want [%v, %v]", i, d, base, base+base/2)
		}
	}
}

func TestSleepCtxCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if sleepCtx(ctx, time.Second) {
		t.Fatal("expected early return on canceled context")
	}
	if !sleepCtx(context.Background(), 0) {
		t.Fatal("zero wait should report success")
	}
}

func TestBundleSchemaShapes(t *testing.T) {
	cases := []struct {
		cat  domain.Category
		list string
	}{
		{domain.CategoryHotel, "hotels"},
		{domain.CategoryRestaurant, "restaurants"},
		{domain.CategoryActivity, "activities"},
	}
	for _, c := range cases {
		s := bundleSchema(c.cat)
		if s.Type != genai.TypeObject {
			t.Fatalf("%s: root type %v", c.cat, s.Type)
		}
		list, ok := s.Properties[c.list]
		if !ok || list.Type != genai.TypeArray {
			t.Fatalf("%s: missing %q array", c.cat, c.list)
		}
		item := list.Items
		for _, req := range item.Required {
			if _, ok := item.Properties[req]; !ok {
				t.Errorf("%s: required %q not declared", c.cat, req)
			}
		}
		if _, ok := item.Properties["price_value"]; !ok {
			t.Errorf("%s: items need price_value", c.cat)
		}
	}
}

func TestPromptsCarryDestination(t *testing.T) {
	for _, cat := range domain.Categories() {
		p := searchPrompt(cat, "Lisbon, Portugal")
		if !strings.Contains(p, "Lisbon, Portugal") {
			t.Errorf("%s search prompt misses destination: %q", cat, p)
		}
		if searchInstruction(cat) == "" || validationInstruction(cat) == "" {
			t.Errorf("%s instructions should not be empty", cat)
		}
	}
	if !strings.Contains(summaryPrompt("Kyoto", `{"x":1}`), "Kyoto") {
		t.Error("summary prompt misses destination")
	}
}
