package adapter

import (
	"context"
	"encoding/json"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // "user", "system"
	Content string `json:"content"`
}

// Usage for a single generation call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Schema carries the JSON Schema document a provider must shape its reply to.
type Schema struct {
	Name string
	Doc  map[string]any
}

// AIServiceAdapter is the port for structured LLM generation.
type AIServiceAdapter interface {
	// Provider identifies the backing service in logs and metrics.
	Provider() string

	// CountTokens must return prompt tokens for the provided messages
	// (provider-specific counting; best-effort when exact isn't available).
	CountTokens(ctx context.Context, model string, messages []Message) (int, error)

	// GenerateStructured returns the raw JSON text produced by the model,
	// plus usage as reported by the provider. Callers validate the JSON.
	GenerateStructured(ctx context.Context, model string, messages []Message, schema Schema) (json.RawMessage, Usage, error)
}
