package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"telegram-weather-bot/internal/domain"
)

// WeatherInfo describes current conditions for a single location.
type WeatherInfo struct {
	Location        string   `json:"location" validate:"required"`
	CurrentTemp     *float64 `json:"current_temp,omitempty"`
	Condition       string   `json:"condition" validate:"required"`
	Humidity        *int     `json:"humidity,omitempty" validate:"omitempty,gte=0,lte=100"`
	WindSpeed       *float64 `json:"wind_speed,omitempty" validate:"omitempty,gte=0"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// ForecastDay is one entry of a multi-day forecast. All fields are required.
type ForecastDay struct {
	Date      string   `json:"date" validate:"required"`
	HighTemp  *float64 `json:"high_temp" validate:"required"`
	LowTemp   *float64 `json:"low_temp" validate:"required"`
	Condition string   `json:"condition" validate:"required"`
}

// WeatherReport is the root object the model must return. It lives only for
// the duration of one request; button presses re-fetch a fresh one.
type WeatherReport struct {
	CurrentWeather          *WeatherInfo  `json:"current_weather" validate:"required"`
	Forecast                []ForecastDay `json:"forecast,omitempty" validate:"omitempty,min=1,max=7,dive"`
	ClothingSuggestions     []string      `json:"clothing_suggestions,omitempty"`
	ActivityRecommendations []string      `json:"activity_recommendations,omitempty"`
}

// SchemaError reports a single violation of the weather schema, naming the
// offending field by its JSON path. errors.Is(err, domain.ErrSchemaViolation)
// holds for it and for any errors.Join of them.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "schema violation: " + e.Reason
	}
	return fmt.Sprintf("schema violation at %s: %s", e.Field, e.Reason)
}

func (e *SchemaError) Unwrap() error { return domain.ErrSchemaViolation }

var validate = newWeatherValidator()

func newWeatherValidator() *validator.Validate {
	v := validator.New()
	// Report field paths by JSON tag so violations name the wire-level field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseReport decodes raw model output and validates it against the weather
// schema. Every violation is reported, not just the first.
func ParseReport(data []byte) (*WeatherReport, error) {
	var rep WeatherReport
	if err := json.Unmarshal(data, &rep); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &SchemaError{Field: typeErr.Field, Reason: "expected " + typeErr.Type.String()}
		}
		return nil, &SchemaError{Reason: "invalid JSON: " + err.Error()}
	}
	if err := rep.Validate(); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Validate enforces the structural and numeric invariants of the schema.
func (r *WeatherReport) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	violations := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, &SchemaError{Field: fieldPath(fe), Reason: reasonFor(fe)})
	}
	return errors.Join(violations...)
}

// fieldPath strips the root struct name from the validator namespace,
// leaving the JSON path, e.g. "current_weather.humidity" or "forecast[2].date".
func fieldPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing or empty"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must contain at least " + fe.Param() + " entries"
	case "max":
		return "must contain at most " + fe.Param() + " entries"
	default:
		return fmt.Sprintf("violates %q constraint", fe.Tag())
	}
}

// ReportJSONSchema is the JSON Schema document sent to generation providers
// that support structured output.
func ReportJSONSchema() map[string]any {
	stringList := func() map[string]any {
		return map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		}
	}
	weatherInfo := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"location":        map[string]any{"type": "string", "description": "Resolved place name"},
			"current_temp":    map[string]any{"type": "number", "description": "Current temperature in degrees Celsius"},
			"condition":       map[string]any{"type": "string", "description": "Short description of current conditions"},
			"humidity":        map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"wind_speed":      map[string]any{"type": "number", "minimum": 0, "description": "Wind speed in km/h"},
			"recommendations": stringList(),
		},
		"required":             []string{"location", "condition"},
		"additionalProperties": false,
	}
	forecastDay := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"date":      map[string]any{"type": "string", "description": "ISO date, e.g. 2024-05-01"},
			"high_temp": map[string]any{"type": "number"},
			"low_temp":  map[string]any{"type": "number"},
			"condition": map[string]any{"type": "string"},
		},
		"required":             []string{"date", "high_temp", "low_temp", "condition"},
		"additionalProperties": false,
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"current_weather": weatherInfo,
			"forecast": map[string]any{
				"type":     "array",
				"items":    forecastDay,
				"minItems": 1,
				"maxItems": 7,
			},
			"clothing_suggestions":     stringList(),
			"activity_recommendations": stringList(),
		},
		"required":             []string{"current_weather"},
		"additionalProperties": false,
	}
}
