package ai

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

var _ adapter.AIServiceAdapter = (*NoopAIAdapter)(nil)

// noopReport is a canned, schema-valid weather report so the whole render
// pipeline can run without a provider key.
const noopReport = `{
  "current_weather": {
    "location": "Demo City",
    "current_temp": 21.5,
    "condition": "Partly cloudy",
    "humidity": 55,
    "wind_speed": 9,
    "recommendations": ["Great day for a walk"]
  },
  "forecast": [
    {"date": "2026-08-22", "high_temp": 24, "low_temp": 15, "condition": "Sunny"},
    {"date": "2026-08-23", "high_temp": 22, "low_temp": 14, "condition": "Cloudy"},
    {"date": "2026-08-24", "high_temp": 19, "low_temp": 12, "condition": "Light rain"}
  ],
  "clothing_suggestions": ["Light jacket", "Comfortable shoes"],
  "activity_recommendations": ["Picnic in the park", "Outdoor photography"]
}`

// NoopAIAdapter implements adapter.AIServiceAdapter for local/dev runs.
// It logs the request and returns the canned report.
type NoopAIAdapter struct{}

// NewNoopAIAdapter constructs the noop adapter.
func NewNoopAIAdapter() *NoopAIAdapter {
	return &NoopAIAdapter{}
}

func (a *NoopAIAdapter) Provider() string { return "noop" }

func (a *NoopAIAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	total := 0
	for _, m := range messages {
		total += len(m.Content) / 4
	}
	return total, nil
}

// GenerateStructured logs the call and simulates a small delay.
func (a *NoopAIAdapter) GenerateStructured(ctx context.Context, model string, messages []adapter.Message, schema adapter.Schema) (json.RawMessage, adapter.Usage, error) {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return nil, adapter.Usage{}, ctx.Err()
	}
	if len(messages) > 0 {
		log.Printf("[noop-ai] %s request (%d messages), last: %s\n", model, len(messages), messages[len(messages)-1].Content)
	}
	return json.RawMessage(noopReport), adapter.Usage{PromptTokens: 42, CompletionTokens: 98, TotalTokens: 140}, nil
}
