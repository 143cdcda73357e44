// File: internal/usecase/weather_uc.go
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/domain"
	"telegram-weather-bot/internal/domain/model"
	"telegram-weather-bot/internal/domain/ports/adapter"
	"telegram-weather-bot/internal/infra/logging"
	"telegram-weather-bot/internal/infra/metrics"
)

// Compile-time check
var _ WeatherUseCase = (*weatherUC)(nil)

// WeatherQuery identifies one weather request. Button presses reuse the
// location with empty preferences.
type WeatherQuery struct {
	Location    string
	Preferences string
}

type WeatherUseCase interface {
	Fetch(ctx context.Context, q WeatherQuery) (*model.WeatherReport, error)
}

type weatherUC struct {
	ai     adapter.AIServiceAdapter
	model  string
	schema adapter.Schema
	log    *zerolog.Logger
}

func NewWeatherUseCase(ai adapter.AIServiceAdapter, modelName string, logger *zerolog.Logger) *weatherUC {
	return &weatherUC{
		ai:     ai,
		model:  modelName,
		schema: adapter.Schema{Name: "weather_report", Doc: model.ReportJSONSchema()},
		log:    logger,
	}
}

// Fetch builds the prompt, makes exactly one generation call and validates
// the reply. Service failure and schema violation both collapse into
// domain.ErrWeatherFetchFailed; the log keeps them apart. No retries, no
// caching: every call goes out to the provider.
func (w *weatherUC) Fetch(ctx context.Context, q WeatherQuery) (*model.WeatherReport, error) {
	defer logging.TraceDuration(w.log, "WeatherUC.Fetch")()

	location := strings.TrimSpace(q.Location)
	if location == "" {
		return nil, domain.ErrEmptyLocation
	}

	msgs := []adapter.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: BuildWeatherPrompt(location, strings.TrimSpace(q.Preferences))},
	}

	log := logging.With(ctx, w.log)
	estPrompt := 0
	if n, err := w.ai.CountTokens(ctx, w.model, msgs); err == nil {
		estPrompt = n
		log.Debug().Int("prompt_tokens", n).Str("location", location).Msg("weather prompt built")
	}

	callStart := time.Now()
	raw, usage, err := w.ai.GenerateStructured(ctx, w.model, msgs, w.schema)
	latency := time.Since(callStart)

	if err != nil {
		metrics.ObserveGeneration(w.ai.Provider(), w.model, 0, 0, 0, int(latency/time.Millisecond), false)
		log.Warn().Err(err).Str("location", location).Msg("generation call failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrWeatherFetchFailed, err)
	}
	if usage == (adapter.Usage{}) {
		// Some gateways omit usage; fall back to the local count.
		usage.PromptTokens = estPrompt
		usage.TotalTokens = estPrompt
	}
	metrics.ObserveGeneration(w.ai.Provider(), w.model, usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens, int(latency/time.Millisecond), true)

	rep, err := model.ParseReport(trimJSONFences(raw))
	if err != nil {
		metrics.IncSchemaViolation(w.ai.Provider())
		log.Warn().Err(err).Str("location", location).Msg("model output failed schema validation")
		return nil, fmt.Errorf("%w: %v", domain.ErrWeatherFetchFailed, err)
	}
	return rep, nil
}

// trimJSONFences strips the markdown fence some providers wrap around JSON
// output despite instructions.
func trimJSONFences(raw []byte) []byte {
	cleaned := strings.TrimSpace(string(raw))
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return []byte(strings.TrimSpace(cleaned))
}
