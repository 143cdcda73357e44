package ai

import (
	"context"
	"encoding/json"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.AIServiceAdapter = (*limitedAI)(nil)

// limitedAI caps concurrent provider calls with a semaphore. Providers
// throttle aggressively; keeping the cap here spares every caller from
// carrying its own.
type limitedAI struct {
	inner adapter.AIServiceAdapter
	sem   chan struct{}
}

func NewLimitedAI(inner adapter.AIServiceAdapter, maxConcurrent int) adapter.AIServiceAdapter {
	if maxConcurrent <= 0 {
		return inner
	}
	return &limitedAI{
		inner: inner,
		sem:   make(chan struct{}, maxConcurrent),
	}
}

func (l *limitedAI) Provider() string { return l.inner.Provider() }

func (l *limitedAI) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	l.sem <- struct{}{}
	defer func() { <-l.sem }()
	return l.inner.CountTokens(ctx, model, messages)
}

func (l *limitedAI) GenerateStructured(ctx context.Context, model string, messages []adapter.Message, schema adapter.Schema) (json.RawMessage, adapter.Usage, error) {
	l.sem <- struct{}{}
	defer func() { <-l.sem }()
	return l.inner.GenerateStructured(ctx, model, messages, schema)
}
