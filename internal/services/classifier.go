package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"leadpilot/lead-intent-api/internal/models"
)

const (
	IntentHigh = "High"
	IntentLow  = "Low"
)

// Verdict is the structured output of one classification, normalized at
// the adapter boundary: intent title-cased, score clamped to 0..10.
type Verdict struct {
	Intent    string `json:"intent"`
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

type ClassifierService interface {
	ClassifyLead(ctx context.Context, offer *models.Offer, lead *models.Lead) (*Verdict, error)
}

// ClassifierConfig is passed in explicitly at construction so tests and
// alternative deployments never touch process-global state.
type ClassifierConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type geminiClassifier struct {
	client        *genai.Client
	model         string
	timeout       time.Duration
	promptBuilder *PromptBuilder
}

func NewGeminiClassifier(ctx context.Context, cfg ClassifierConfig) (ClassifierService, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &geminiClassifier{
		client:        client,
		model:         model,
		timeout:       timeout,
		promptBuilder: NewPromptBuilder(),
	}, nil
}

// ClassifyLead implements ClassifierService. Failure classes are kept
// distinguishable for the orchestrator: quota exhaustion, upstream call
// failure (including timeout) and anything else. The adapter never decides
// to skip a lead itself.
func (g *geminiClassifier) ClassifyLead(ctx context.Context, offer *models.Offer, lead *models.Lead) (*Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := g.promptBuilder.BuildIntentPrompt(offer, lead)

	temperature := float32(0.2)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 1024,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Code == http.StatusTooManyRequests {
				return nil, fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrUpstreamCallFailed, err)
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamCallFailed, err)
		}
		return nil, fmt.Errorf("failed to generate verdict: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", ErrUpstreamCallFailed)
	}

	return parseVerdict(resp.Text()), nil
}

// rawVerdict tolerates the model returning the score as a float.
type rawVerdict struct {
	Intent    string  `json:"intent"`
	Reasoning string  `json:"reasoning"`
	Score     float64 `json:"score"`
}

// parseVerdict turns model output into a Verdict. It tries strict JSON
// first, then the first brace-delimited substring, and finally falls back
// to a safe default verdict instead of failing: unparseable output means
// "low intent", never a lost lead.
func parseVerdict(text string) *Verdict {
	var raw rawVerdict
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		extracted := extractJSON(text)
		if err := json.Unmarshal([]byte(extracted), &raw); err != nil {
			return defaultVerdict()
		}
	}

	return &Verdict{
		Intent:    normalizeIntent(raw.Intent),
		Score:     clampScore(raw.Score),
		Reasoning: raw.Reasoning,
	}
}

func defaultVerdict() *Verdict {
	return &Verdict{
		Intent:    IntentLow,
		Score:     0,
		Reasoning: "parse failure, defaulted low",
	}
}

// extractJSON pulls a JSON object out of text that might be wrapped in
// markdown fences or surrounding prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

// normalizeIntent title-cases the model's intent value; anything empty
// defaults to Low.
func normalizeIntent(intent string) string {
	intent = strings.ToLower(strings.TrimSpace(intent))
	if intent == "" {
		return IntentLow
	}
	return strings.ToUpper(intent[:1]) + intent[1:]
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return int(score)
}
