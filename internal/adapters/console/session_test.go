package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"travel_planner/internal/adapters/console"
	"travel_planner/internal/domain"
)

type fakePlanner struct {
	mu    sync.Mutex
	calls []string
	plan  func(ctx context.Context, destination string) (*domain.TravelPlan, error)
}

func (f *fakePlanner) Plan(ctx context.Context, destination string) (*domain.TravelPlan, error) {
	f.mu.Lock()
	f.calls = append(f.calls, destination)
	f.mu.Unlock()
	if f.plan != nil {
		return f.plan(ctx, destination)
	}
	return planFor(destination), nil
}

func (f *fakePlanner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func planFor(destination string) *domain.TravelPlan {
	return &domain.TravelPlan{
		ID:          "plan-1",
		Destination: destination,
		Summary:     "Plenty to see in " + destination + ".",
	}
}

type fakeReporter struct {
	mu    sync.Mutex
	plans []*domain.TravelPlan
	path  string
	err   error
}

func (f *fakeReporter) Write(_ context.Context, plan *domain.TravelPlan) (string, error) {
	f.mu.Lock()
	f.plans = append(f.plans, plan)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

func runSession(t *testing.T, p console.Planner, r console.Reporter, script string) string {
	t.Helper()
	var out bytes.Buffer
	s := console.NewSession(p, r, strings.NewReader(script), &out, nil, false)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestSessionPlanThenDecline(t *testing.T) {
	planner := &fakePlanner{}
	reporter := &fakeReporter{path: "guides/x.pdf"}

	out := runSession(t, planner, reporter, "Lisbon\nn\nquit\n")

	if got := planner.callCount(); got != 1 {
		t.Fatalf("planner calls = %d, want 1", got)
	}
	if planner.calls[0] != "Lisbon" {
		t.Errorf("planned destination = %q, want Lisbon", planner.calls[0])
	}
	if !strings.Contains(out, "TRAVEL SUMMARY: Lisbon") {
		t.Errorf("output missing summary header:\n%s", out)
	}
	if !strings.Contains(out, "Plenty to see in Lisbon.") {
		t.Errorf("output missing summary body:\n%s", out)
	}
	if !strings.Contains(out, "No problem! Your travel summary is above.") {
		t.Errorf("output missing decline message:\n%s", out)
	}
	if !strings.Contains(out, "Safe travels! See you next time!") {
		t.Errorf("output missing farewell:\n%s", out)
	}
	if len(reporter.plans) != 0 {
		t.Errorf("reporter called %d times, want 0", len(reporter.plans))
	}
}

func TestSessionPlanThenGuide(t *testing.T) {
	planner := &fakePlanner{}
	reporter := &fakeReporter{path: "guides/Kyoto_Travel_Guide_20250714.pdf"}

	out := runSession(t, planner, reporter, "Kyoto\ny\nquit\n")

	if len(reporter.plans) != 1 {
		t.Fatalf("reporter calls = %d, want 1", len(reporter.plans))
	}
	if reporter.plans[0].Destination != "Kyoto" {
		t.Errorf("reported destination = %q, want Kyoto", reporter.plans[0].Destination)
	}
	if !strings.Contains(out, "Generating your PDF travel guide...") {
		t.Errorf("output missing progress message:\n%s", out)
	}
	if !strings.Contains(out, "Your travel guide is ready: guides/Kyoto_Travel_Guide_20250714.pdf") {
		t.Errorf("output missing guide path:\n%s", out)
	}
}

func TestSessionRepromptsOnEmptyDestination(t *testing.T) {
	planner := &fakePlanner{}

	out := runSession(t, planner, &fakeReporter{}, "\n   \nOslo\nn\nquit\n")

	if got := strings.Count(out, "Please enter a valid destination."); got != 2 {
		t.Errorf("reprompt count = %d, want 2\n%s", got, out)
	}
	if got := planner.callCount(); got != 1 {
		t.Fatalf("planner calls = %d, want 1", got)
	}
	if planner.calls[0] != "Oslo" {
		t.Errorf("planned destination = %q, want Oslo", planner.calls[0])
	}
}

func TestSessionReasksOnUnclearChoice(t *testing.T) {
	planner := &fakePlanner{}
	reporter := &fakeReporter{path: "guides/x.pdf"}

	out := runSession(t, planner, reporter, "Oslo\nmaybe\nY\nquit\n")

	if !strings.Contains(out, "Please enter 'y' for yes or 'n' for no.") {
		t.Errorf("output missing re-ask message:\n%s", out)
	}
	if len(reporter.plans) != 1 {
		t.Errorf("reporter calls = %d, want 1 after the uppercase yes", len(reporter.plans))
	}
}

func TestSessionQuitWords(t *testing.T) {
	for _, script := range []string{"quit\n", "exit\n", "Q\n", "bye\n", ""} {
		planner := &fakePlanner{}
		out := runSession(t, planner, &fakeReporter{}, script)
		if !strings.Contains(out, "Safe travels! See you next time!") {
			t.Errorf("script %q: missing farewell:\n%s", script, out)
		}
		if got := planner.callCount(); got != 0 {
			t.Errorf("script %q: planner calls = %d, want 0", script, got)
		}
	}
}

func TestSessionDegradedPlanWarns(t *testing.T) {
	planner := &fakePlanner{
		plan: func(_ context.Context, destination string) (*domain.TravelPlan, error) {
			p := planFor(destination)
			p.Degraded = true
			return p, nil
		},
	}

	out := runSession(t, planner, &fakeReporter{}, "Ulaanbaatar\nn\nquit\n")

	if !strings.Contains(out, "Some recommendations come from the offline demo guide.") {
		t.Errorf("output missing degraded warning:\n%s", out)
	}
}

func TestSessionPlannerErrorKeepsLooping(t *testing.T) {
	planner := &fakePlanner{
		plan: func(_ context.Context, destination string) (*domain.TravelPlan, error) {
			if destination == "Atlantis" {
				return nil, errors.New("no such place")
			}
			return planFor(destination), nil
		},
	}

	out := runSession(t, planner, &fakeReporter{}, "Atlantis\nReykjavik\nn\nquit\n")

	if !strings.Contains(out, "Planning failed: no such place") {
		t.Errorf("output missing failure message:\n%s", out)
	}
	if !strings.Contains(out, "Please try again with a different destination.") {
		t.Errorf("output missing retry hint:\n%s", out)
	}
	if !strings.Contains(out, "TRAVEL SUMMARY: Reykjavik") {
		t.Errorf("second destination not planned:\n%s", out)
	}
}

func TestSessionReporterErrorKeepsSummary(t *testing.T) {
	reporter := &fakeReporter{err: errors.New("disk full")}

	out := runSession(t, &fakePlanner{}, reporter, "Oslo\ny\nquit\n")

	if !strings.Contains(out, "Could not create the PDF guide: disk full") {
		t.Errorf("output missing reporter error:\n%s", out)
	}
	if !strings.Contains(out, "The travel summary is still available above.") {
		t.Errorf("output missing reassurance:\n%s", out)
	}
	if !strings.Contains(out, "Safe travels! See you next time!") {
		t.Errorf("session did not continue to quit:\n%s", out)
	}
}

func TestSessionRendererApplied(t *testing.T) {
	var out bytes.Buffer
	render := func(md string) string { return "[styled] " + md }
	s := console.NewSession(&fakePlanner{}, &fakeReporter{}, strings.NewReader("Lisbon\nn\nquit\n"), &out, render, false)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "[styled] Plenty to see in Lisbon.") {
		t.Errorf("renderer not applied:\n%s", out.String())
	}
}

func TestSessionCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	planner := &fakePlanner{}
	var out bytes.Buffer
	s := console.NewSession(planner, &fakeReporter{}, strings.NewReader("Lisbon\n"), &out, nil, false)

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if !strings.Contains(out.String(), "Travel planning cancelled. Safe travels!") {
		t.Errorf("output missing cancel farewell:\n%s", out.String())
	}
	if got := planner.callCount(); got != 0 {
		t.Errorf("planner calls = %d, want 0", got)
	}
}
