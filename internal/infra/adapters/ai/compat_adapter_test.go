//go:build !integration

package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"telegram-weather-bot/internal/domain/ports/adapter"
	ai "telegram-weather-bot/internal/infra/adapters/ai"
)

func TestCompatAdapter(t *testing.T) {
	msgs := []adapter.Message{
		{Role: "system", Content: "You are a weather assistant."},
		{Role: "user", Content: "Weather for Paris"},
	}
	schema := adapter.Schema{Name: "weather_report", Doc: map[string]any{"type": "object"}}

	t.Run("should post an openai-shaped request and decode the reply", func(t *testing.T) {
		var gotAuth, gotPath string
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = w.Write([]byte(`{
				"choices": [{"message": {"role": "assistant", "content": "{\"current_weather\":{\"location\":\"Paris\",\"condition\":\"Sunny\"}}"}}],
				"usage": {"prompt_tokens": 11, "completion_tokens": 7, "total_tokens": 18}
			}`))
		}))
		defer srv.Close()

		a, err := ai.NewCompatAdapter("k-123", srv.URL+"/openai/v1", "gpt-4o-mini", 512)
		if err != nil {
			t.Fatalf("NewCompatAdapter: %v", err)
		}

		raw, usage, err := a.GenerateStructured(context.Background(), "", msgs, schema)
		if err != nil {
			t.Fatalf("GenerateStructured: %v", err)
		}
		if gotAuth != "Bearer k-123" {
			t.Fatalf("auth header = %q", gotAuth)
		}
		if gotPath != "/openai/v1/chat/completions" {
			t.Fatalf("path = %q", gotPath)
		}
		if gotBody["model"] != "gpt-4o-mini" {
			t.Fatalf("model = %v", gotBody["model"])
		}
		rf, _ := gotBody["response_format"].(map[string]any)
		if rf["type"] != "json_object" {
			t.Fatalf("response_format = %v", gotBody["response_format"])
		}
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("reply is not json: %v", err)
		}
		if usage.TotalTokens != 18 {
			t.Fatalf("usage = %+v", usage)
		}
	})

	t.Run("should surface upstream http errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		a, err := ai.NewCompatAdapter("k-123", srv.URL, "gpt-4o-mini", 0)
		if err != nil {
			t.Fatalf("NewCompatAdapter: %v", err)
		}
		if _, _, err := a.GenerateStructured(context.Background(), "", msgs, schema); err == nil {
			t.Fatal("expected error on http 429")
		}
	})

	t.Run("should reject empty configuration", func(t *testing.T) {
		if _, err := ai.NewCompatAdapter("", "https://example.test", "", 0); err == nil {
			t.Fatal("expected error for empty key")
		}
		if _, err := ai.NewCompatAdapter("k", "", "", 0); err == nil {
			t.Fatal("expected error for empty base url")
		}
	})
}
