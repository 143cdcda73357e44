//go:build !integration

package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

// ---- Mock AIServiceAdapter ----

type generateCall struct {
	Model  string
	Msgs   []adapter.Message
	Schema adapter.Schema
}

type MockAI struct {
	mu sync.Mutex

	// configurable behavior
	ProviderVal            string
	CountTokensFunc        func(ctx context.Context, model string, msgs []adapter.Message) (int, error)
	GenerateStructuredFunc func(ctx context.Context, model string, msgs []adapter.Message, schema adapter.Schema) (json.RawMessage, adapter.Usage, error)

	// tracing of invocations
	Calls struct {
		Count    int
		Generate []generateCall
	}
}

var _ adapter.AIServiceAdapter = (*MockAI)(nil)

func (m *MockAI) Provider() string {
	if m.ProviderVal == "" {
		return "mock"
	}
	return m.ProviderVal
}

func (m *MockAI) CountTokens(ctx context.Context, model string, msgs []adapter.Message) (int, error) {
	m.mu.Lock()
	m.Calls.Count++
	m.mu.Unlock()
	if m.CountTokensFunc != nil {
		return m.CountTokensFunc(ctx, model, msgs)
	}
	n := 0
	for _, x := range msgs {
		n += len(x.Content)
	} // dumb baseline
	return n, nil
}

func (m *MockAI) GenerateStructured(ctx context.Context, model string, msgs []adapter.Message, schema adapter.Schema) (json.RawMessage, adapter.Usage, error) {
	m.mu.Lock()
	m.Calls.Generate = append(m.Calls.Generate, generateCall{Model: model, Msgs: msgs, Schema: schema})
	m.mu.Unlock()
	if m.GenerateStructuredFunc != nil {
		return m.GenerateStructuredFunc(ctx, model, msgs, schema)
	}
	return json.RawMessage(`{"current_weather": {"location": "Paris", "condition": "Sunny"}}`), adapter.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}, nil
}

// newTestLogger creates a silent zerolog.Logger for use in tests.
func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}
