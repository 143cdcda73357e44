// File: internal/infra/adapters/ai/multi_adapter.go
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

var _ adapter.AIServiceAdapter = (*MultiAIAdapter)(nil)

// MultiAIAdapter routes each call to a provider by model name prefix, so a
// deployment can keep several keys configured and switch models without a
// restart topology change.
type MultiAIAdapter struct {
	defaultProvider string // e.g., "openai" or "gemini"
	byProvider      map[string]adapter.AIServiceAdapter
}

// NewMultiAIAdapter does not inject any default model; it only knows a
// default provider. Each provider adapter owns its own default model.
func NewMultiAIAdapter(defaultProvider string, byProvider map[string]adapter.AIServiceAdapter) *MultiAIAdapter {
	return &MultiAIAdapter{
		defaultProvider: strings.ToLower(defaultProvider),
		byProvider:      byProvider,
	}
}

func (m *MultiAIAdapter) Provider() string { return m.defaultProvider }

func (m *MultiAIAdapter) resolveProvider(model string) string {
	l := strings.ToLower(model)
	switch {
	case strings.HasPrefix(l, "gemini"):
		return "gemini"
	case strings.HasPrefix(l, "gpt"): // OpenAI models
		return "openai"
	default:
		return m.defaultProvider
	}
}

func (m *MultiAIAdapter) pick(model string) adapter.AIServiceAdapter {
	prov := m.resolveProvider(model)
	if a := m.byProvider[prov]; a != nil {
		return a
	}
	// last resort: first available
	for _, a := range m.byProvider {
		if a != nil {
			return a
		}
	}
	return nil
}

func (m *MultiAIAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	a := m.pick(model)
	if a == nil {
		return 0, nil
	}
	return a.CountTokens(ctx, model, messages)
}

func (m *MultiAIAdapter) GenerateStructured(ctx context.Context, model string, messages []adapter.Message, schema adapter.Schema) (json.RawMessage, adapter.Usage, error) {
	a := m.pick(model)
	if a == nil {
		return nil, adapter.Usage{}, errors.New("no ai provider configured")
	}
	return a.GenerateStructured(ctx, model, messages, schema)
}
