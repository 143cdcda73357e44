// File: .\internal\infra\adapters\ai\gemini_adapter.go
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"google.golang.org/genai"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

var _ adapter.AIServiceAdapter = (*GeminiAdapter)(nil)

type GeminiAdapter struct {
	client       *genai.Client
	defaultModel string
	maxOut       int
}

// NewGeminiAdapter creates a Gemini adapter using the official SDK.
func NewGeminiAdapter(ctx context.Context, apiKey, baseUrl, defaultModel string, maxOut int) (*GeminiAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: empty api key")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseUrl,
		},
	})
	if err != nil {
		return nil, err
	}
	return &GeminiAdapter{client: c, defaultModel: defaultModel, maxOut: maxOut}, nil
}

func (g *GeminiAdapter) Provider() string { return "gemini" }

func (g *GeminiAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	contents := toGenAIContents(messages)
	// Per docs, CountTokens takes []*genai.Content. (NOT []genai.Part)
	// https://ai.google.dev/gemini-api/docs/tokens?hl=en#go
	resp, err := g.client.Models.CountTokens(ctx, modelOrDefault(model, g.defaultModel), contents, nil)
	if err != nil {
		return 0, err
	}
	return int(resp.TotalTokens), nil
}

func (g *GeminiAdapter) GenerateStructured(ctx context.Context, model string, messages []adapter.Message, schema adapter.Schema) (json.RawMessage, adapter.Usage, error) {
	if len(messages) == 0 {
		return nil, adapter.Usage{}, errors.New("gemini: no messages")
	}

	// Gemini carries system text in the config, not in the history.
	var sysParts []*genai.Part
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch strings.ToLower(m.Role) {
		case "system":
			sysParts = append(sysParts, &genai.Part{Text: m.Content})
		case "assistant", "model":
			contents = append(contents, &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: []*genai.Part{{Text: m.Content}}})
		}
	}
	if len(contents) == 0 {
		return nil, adapter.Usage{}, errors.New("gemini: no user message")
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   jsonSchemaToGenAI(schema.Doc),
	}
	if g.maxOut > 0 {
		cfg.MaxOutputTokens = int32(g.maxOut)
	}
	if len(sysParts) > 0 {
		cfg.SystemInstruction = &genai.Content{Parts: sysParts}
	}

	resp, err := g.client.Models.GenerateContent(ctx, modelOrDefault(model, g.defaultModel), contents, cfg)
	if err != nil {
		return nil, adapter.Usage{}, err
	}

	text := ""
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if t := resp.Candidates[0].Content.Parts[0].Text; t != "" {
			text = t
		}
	}
	u := adapter.Usage{}
	if resp != nil && resp.UsageMetadata != nil {
		u.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		u.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		u.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	if text == "" {
		return nil, u, errors.New("gemini: empty candidate")
	}
	return json.RawMessage(text), u, nil
}

// --- internal ---

func toGenAIContents(msgs []adapter.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := genai.RoleUser
		switch strings.ToLower(m.Role) {
		case "assistant", "model":
			role = genai.RoleModel
		case "system":
			// No separate "system" role in history; counted as user text.
			role = genai.RoleUser
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return out
}

// jsonSchemaToGenAI maps the subset of JSON Schema the weather report uses
// onto the SDK's schema type. Numeric bounds are not mapped; the report
// validator enforces them after parsing.
func jsonSchemaToGenAI(doc map[string]any) *genai.Schema {
	if doc == nil {
		return nil
	}
	s := &genai.Schema{}
	if t, ok := doc["type"].(string); ok {
		s.Type = genAIType(t)
	}
	if d, ok := doc["description"].(string); ok {
		s.Description = d
	}
	if props, ok := doc["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, sub := range props {
			if subDoc, ok := sub.(map[string]any); ok {
				s.Properties[name] = jsonSchemaToGenAI(subDoc)
			}
		}
	}
	switch req := doc["required"].(type) {
	case []string:
		s.Required = append(s.Required, req...)
	case []any:
		for _, r := range req {
			if name, ok := r.(string); ok {
				s.Required = append(s.Required, name)
			}
		}
	}
	if items, ok := doc["items"].(map[string]any); ok {
		s.Items = jsonSchemaToGenAI(items)
	}
	return s
}

func genAIType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

func modelOrDefault(model, def string) string {
	if strings.TrimSpace(model) != "" {
		return model
	}
	return def
}
