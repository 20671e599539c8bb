package gemini

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"travel_planner/internal/adapters/observability"
	"travel_planner/internal/domain"
)

// Client drives the search, validation and summary agents against Gemini.
// Each pipeline stage is a single-turn generation with stage-specific
// system instructions, tools and response constraints.
type Client struct {
	gc    *genai.Client
	model string
	rl    *rate.Limiter
}

var (
	ErrNoCredential  = errors.New("gemini: API key is required")
	ErrEmptyResponse = errors.New("gemini: empty response")
)

func New(ctx context.Context, apiKey, model string, rps int) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}
	if rps <= 0 {
		rps = 2
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{
		gc:    gc,
		model: model,
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// Search runs the category's search agent: grounded web research that
// returns free-text notes covering all three price tiers.
func (c *Client) Search(ctx context.Context, cat domain.Category, destination string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemContent(searchInstruction(cat)),
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		Temperature:       genai.Ptr[float32](0.6),
	}
	return c.generate(ctx, string(cat), "search", searchPrompt(cat, destination), cfg)
}

// Structure runs the category's validation agent: it distills raw search
// notes into the category's JSON document, constrained by a response schema.
func (c *Client) Structure(ctx context.Context, cat domain.Category, notes string) (map[string]any, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemContent(validationInstruction(cat)),
		Temperature:       genai.Ptr[float32](0.1),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    bundleSchema(cat),
	}
	text, err := c.generate(ctx, string(cat), "structure", validationPrompt(cat, notes), cfg)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(stripFences(text)), &doc); err != nil {
		return nil, fmt.Errorf("gemini: decode %s document: %w", cat, err)
	}
	return doc, nil
}

// Summarize condenses the merged bundles into a short traveller briefing.
func (c *Client) Summarize(ctx context.Context, destination string, bundles []domain.CategoryBundle) (string, error) {
	payload, err := json.Marshal(bundles)
	if err != nil {
		return "", fmt.Errorf("gemini: encode bundles: %w", err)
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemContent(summaryInstruction),
		Temperature:       genai.Ptr[float32](0.3),
	}
	return c.generate(ctx, "plan", "summarize", summaryPrompt(destination, string(payload)), cfg)
}

// generate performs one model call with client-side rate limiting and
// retries on transport errors and empty responses.
func (c *Client) generate(ctx context.Context, label, op, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}
	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{genai.NewPartFromText(prompt)},
	}}

	start := time.Now()
	var lastErr error
	for i := 0; i < 4; i++ {
		resp, err := c.gc.Models.GenerateContent(ctx, c.model, contents, cfg)
		if err != nil {
			if ctx.Err() != nil {
				lastErr = ctx.Err()
				break
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			break
		}
		text := strings.TrimSpace(resp.Text())
		if text == "" {
			lastErr = ErrEmptyResponse
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			break
		}
		observability.ObserveAgent(label, op, nil, time.Since(start))
		return text, nil
	}
	if ctx.Err() != nil {
		lastErr = ctx.Err()
	}
	observability.ObserveAgent(label, op, lastErr, time.Since(start))
	log.Debug().Str("category", label).Str("op", op).Err(lastErr).Msg("model call failed")
	return "", lastErr
}

func systemContent(instruction string) *genai.Content {
	return &genai.Content{
		Parts: []*genai.Part{genai.NewPartFromText(instruction)},
	}
}

// stripFences removes a markdown code fence wrapping, which schema-constrained
// responses occasionally still carry.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms, 800ms...),
// with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0                  // 0..1
	j := time.Duration(0.5 * f * float64(base)) // up to +50%
	return base + j
}
