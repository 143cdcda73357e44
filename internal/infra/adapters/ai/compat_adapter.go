package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.AIServiceAdapter = (*CompatAdapter)(nil)

// CompatAdapter implements adapter.AIServiceAdapter against any
// OpenAI-compatible gateway (self-hosted proxies, regional resellers).
// Chat completions path is the same as OpenAI: /chat/completions
// Authorization: Bearer <key>
//
// Gateways rarely support json_schema response formats, so this adapter
// requests json_object mode and leans on the prompt for the exact shape.
type CompatAdapter struct {
	apiKey string
	base   string // e.g., https://api.example.ir/openai/v1
	model  string
	maxOut int
	client *http.Client
}

func NewCompatAdapter(apiKey, base, model string, maxOut int) (*CompatAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("compat api key empty")
	}
	if base == "" {
		return nil, errors.New("compat base url empty")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &CompatAdapter{
		apiKey: apiKey,
		base:   strings.TrimRight(base, "/"),
		model:  model,
		maxOut: maxOut,
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *CompatAdapter) Provider() string { return "compat" }

// CountTokens has no tokenizer to lean on for unknown gateway models, so it
// returns the usual chars/4 estimate.
func (c *CompatAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	total := 0
	for _, m := range messages {
		total += len(m.Content) / 4
	}
	return total, nil
}

func (c *CompatAdapter) GenerateStructured(ctx context.Context, model string, messages []adapter.Message, schema adapter.Schema) (json.RawMessage, adapter.Usage, error) {
	if model == "" {
		model = c.model
	}

	// Build the request using the shared adapter.Message with JSON tags
	reqBody := struct {
		Model          string            `json:"model"`
		Messages       []adapter.Message `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
		MaxTokens int `json:"max_tokens,omitempty"`
	}{Model: model, Messages: messages, MaxTokens: c.maxOut}
	reqBody.ResponseFormat.Type = "json_object"

	b, _ := json.Marshal(reqBody)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/chat/completions", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, adapter.Usage{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, adapter.Usage{}, fmt.Errorf("compat http %d", resp.StatusCode)
	}

	var payload struct {
		Choices []struct {
			Message adapter.Message `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, adapter.Usage{}, err
	}

	usage := adapter.Usage{
		PromptTokens:     payload.Usage.PromptTokens,
		CompletionTokens: payload.Usage.CompletionTokens,
		TotalTokens:      payload.Usage.TotalTokens,
	}
	for _, ch := range payload.Choices {
		if ch.Message.Content != "" {
			return json.RawMessage(ch.Message.Content), usage, nil
		}
	}
	return nil, usage, errors.New("no choice content")
}
