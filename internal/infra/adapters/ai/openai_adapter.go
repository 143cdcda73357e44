package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"github.com/pkoukk/tiktoken-go"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.AIServiceAdapter = (*OpenAIAdapter)(nil)

// OpenAIAdapter implements adapter.AIServiceAdapter on the official Chat
// Completions SDK, asking for schema-constrained JSON output.
type OpenAIAdapter struct {
	client openai.Client
	model  string
	maxOut int

	encOnce sync.Once
	enc     *tiktoken.Tiktoken
	encErr  error
}

func NewOpenAIAdapter(apiKey, model string, maxOut int) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key empty")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIAdapter{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		maxOut: maxOut,
	}, nil
}

func (o *OpenAIAdapter) Provider() string { return "openai" }

// CountTokens estimates with the cl100k_base encoding, which covers the
// gpt-4o family closely enough for logging. The encoding loads lazily; when
// it cannot be loaded a chars/4 estimate stands in.
func (o *OpenAIAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	o.encOnce.Do(func() {
		o.enc, o.encErr = tiktoken.GetEncoding("cl100k_base")
	})
	total := 0
	for _, m := range messages {
		if o.encErr != nil || o.enc == nil {
			total += len(m.Content) / 4
			continue
		}
		total += len(o.enc.Encode(m.Content, nil, nil))
	}
	return total, nil
}

func (o *OpenAIAdapter) GenerateStructured(ctx context.Context, model string, messages []adapter.Message, schema adapter.Schema) (json.RawMessage, adapter.Usage, error) {
	if model == "" {
		model = o.model
	}

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch strings.ToLower(m.Role) {
		case "system":
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case "assistant":
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: msgs,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schema.Name,
					Schema: schema.Doc,
				},
			},
		},
	}
	if o.maxOut > 0 {
		params.MaxTokens = openai.Int(int64(o.maxOut))
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, adapter.Usage{}, err
	}

	usage := adapter.Usage{
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
		TotalTokens:      int(resp.Usage.TotalTokens),
	}
	for _, c := range resp.Choices {
		if c.Message.Content != "" {
			return json.RawMessage(c.Message.Content), usage, nil
		}
	}
	return nil, usage, errors.New("no choice content")
}
