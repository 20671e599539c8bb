// Package console drives the interactive travel planning session.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"travel_planner/internal/domain"
)

// Planner produces a travel plan for a destination.
type Planner interface {
	Plan(ctx context.Context, destination string) (*domain.TravelPlan, error)
}

// Reporter persists a plan as a travel guide and returns its path.
type Reporter interface {
	Write(ctx context.Context, plan *domain.TravelPlan) (string, error)
}

type state int

const (
	stateAwaitDestination state = iota
	stateShowSummary
	stateAwaitReportChoice
	stateDone
)

var quitWords = map[string]bool{"quit": true, "exit": true, "q": true, "bye": true}

var yesWords = map[string]bool{"y": true, "yes": true, "yeah": true, "1": true, "true": true}

var noWords = map[string]bool{"n": true, "no": true, "nope": true, "0": true, "false": true}

// Session is the read-prompt-respond loop. One Session serves one user
// from start to quit; it is not safe for concurrent use.
type Session struct {
	planner  Planner
	reporter Reporter
	in       *bufio.Scanner
	out      io.Writer
	render   func(string) string
	spinner  bool

	state state
	plan  *domain.TravelPlan
}

// NewSession wires a session over the given streams. render may be nil,
// in which case summaries print as raw markdown. spinner should be false
// when out is not a terminal.
func NewSession(p Planner, r Reporter, in io.Reader, out io.Writer, render func(string) string, spinner bool) *Session {
	if render == nil {
		render = func(s string) string { return s }
	}
	return &Session{
		planner:  p,
		reporter: r,
		in:       bufio.NewScanner(in),
		out:      out,
		render:   render,
		spinner:  spinner,
		state:    stateAwaitDestination,
	}
}

// Run executes the session until the user quits, input ends, or ctx is
// canceled. Quit and end-of-input return nil; cancellation returns the
// context error after a farewell.
func (s *Session) Run(ctx context.Context) error {
	for s.state != stateDone {
		if ctx.Err() != nil {
			fmt.Fprintln(s.out, "\nTravel planning cancelled. Safe travels!")
			return ctx.Err()
		}
		switch s.state {
		case stateAwaitDestination:
			s.awaitDestination(ctx)
		case stateShowSummary:
			s.showSummary()
		case stateAwaitReportChoice:
			s.awaitReportChoice(ctx)
		}
	}
	return nil
}

func (s *Session) awaitDestination(ctx context.Context) {
	fmt.Fprint(s.out, "\nWhere would you like to go? (or 'quit' to exit): ")
	line, ok := s.readLine()
	if !ok {
		s.farewell()
		return
	}
	destination := strings.TrimSpace(line)
	if quitWords[strings.ToLower(destination)] {
		s.farewell()
		return
	}
	if destination == "" {
		fmt.Fprintln(s.out, "Please enter a valid destination.")
		return
	}

	stop := s.startSpinner("Researching " + destination)
	plan, err := s.planner.Plan(ctx, destination)
	stop()
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(s.out, "Planning failed: %v\n", err)
		fmt.Fprintln(s.out, "Please try again with a different destination.")
		return
	}
	s.plan = plan
	s.state = stateShowSummary
}

func (s *Session) showSummary() {
	bar := strings.Repeat("=", 60)
	fmt.Fprintln(s.out, "\n"+bar)
	fmt.Fprintf(s.out, "TRAVEL SUMMARY: %s\n", s.plan.Destination)
	fmt.Fprintln(s.out, bar)
	fmt.Fprintln(s.out, strings.TrimRight(s.render(s.plan.Summary), "\n"))
	fmt.Fprintln(s.out, bar)
	if s.plan.Degraded {
		fmt.Fprintln(s.out, warnLine("Some recommendations come from the offline demo guide."))
	}
	s.state = stateAwaitReportChoice
}

func (s *Session) awaitReportChoice(ctx context.Context) {
	fmt.Fprint(s.out, "\nWould you like a PDF travel guide? (y/n): ")
	line, ok := s.readLine()
	if !ok {
		s.farewell()
		return
	}
	choice := strings.ToLower(strings.TrimSpace(line))
	switch {
	case yesWords[choice]:
		s.writeReport(ctx)
		s.state = stateAwaitDestination
	case noWords[choice]:
		fmt.Fprintln(s.out, "No problem! Your travel summary is above.")
		s.state = stateAwaitDestination
	case quitWords[choice]:
		s.farewell()
	default:
		fmt.Fprintln(s.out, "Please enter 'y' for yes or 'n' for no.")
	}
}

func (s *Session) writeReport(ctx context.Context) {
	fmt.Fprintln(s.out, "Generating your PDF travel guide...")
	stop := s.startSpinner("Writing " + s.plan.Destination + " guide")
	path, err := s.reporter.Write(ctx, s.plan)
	stop()
	if err != nil {
		fmt.Fprintf(s.out, "Could not create the PDF guide: %v\n", err)
		fmt.Fprintln(s.out, "The travel summary is still available above.")
		return
	}
	fmt.Fprintln(s.out, okLine("Your travel guide is ready: "+path))
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out, "Safe travels! See you next time!")
	s.state = stateDone
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// startSpinner prints a spinner with a message until the returned stop
// function is called. A no-op when the session runs without a terminal.
func (s *Session) startSpinner(message string) func() {
	if !s.spinner {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		frames := []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}
		idx := 0
		for {
			select {
			case <-done:
				fmt.Fprint(s.out, "\r")
				return
			default:
				fmt.Fprintf(s.out, "\r%s %s", string(frames[idx]), message)
				idx = (idx + 1) % len(frames)
				time.Sleep(80 * time.Millisecond)
			}
		}
	}()
	return func() {
		close(done)
		fmt.Fprint(s.out, "\r\x1b[2K") // clear line
	}
}
