//go:build !integration

package model

import (
	"errors"
	"strings"
	"testing"

	"telegram-weather-bot/internal/domain"
)

const fullReportJSON = `{
  "current_weather": {
    "location": "Paris",
    "current_temp": 21.5,
    "condition": "Partly cloudy",
    "humidity": 60,
    "wind_speed": 12.5,
    "recommendations": ["Carry a light jacket"]
  },
  "forecast": [
    {"date": "2024-05-01", "high_temp": 22, "low_temp": 13, "condition": "Sunny"},
    {"date": "2024-05-02", "high_temp": 19, "low_temp": 11, "condition": "Showers"}
  ],
  "clothing_suggestions": ["Light jacket", "Comfortable shoes"],
  "activity_recommendations": ["Walk along the Seine"]
}`

func TestParseReport(t *testing.T) {
	t.Run("should accept a full valid report", func(t *testing.T) {
		rep, err := ParseReport([]byte(fullReportJSON))
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if rep == nil {
			t.Fatal("expected report to be non-nil, but got nil")
		}
		if rep.CurrentWeather.Location != "Paris" {
			t.Errorf("expected location to be 'Paris', but got %s", rep.CurrentWeather.Location)
		}
		if rep.CurrentWeather.CurrentTemp == nil || *rep.CurrentWeather.CurrentTemp != 21.5 {
			t.Errorf("expected current_temp 21.5, but got %v", rep.CurrentWeather.CurrentTemp)
		}
		if len(rep.Forecast) != 2 {
			t.Fatalf("expected 2 forecast days, but got %d", len(rep.Forecast))
		}
		if rep.Forecast[0].Date != "2024-05-01" {
			t.Errorf("expected first forecast date to be '2024-05-01', but got %s", rep.Forecast[0].Date)
		}
	})

	t.Run("should accept a minimal report with only required fields", func(t *testing.T) {
		rep, err := ParseReport([]byte(`{"current_weather": {"location": "Oslo", "condition": "Clear"}}`))
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if rep.CurrentWeather.Humidity != nil {
			t.Error("expected humidity to be nil when absent")
		}
		if rep.Forecast != nil {
			t.Error("expected forecast to be nil when absent")
		}
	})

	t.Run("should reject a report without current_weather", func(t *testing.T) {
		_, err := ParseReport([]byte(`{"forecast": [{"date": "2024-05-01", "high_temp": 22, "low_temp": 13, "condition": "Sunny"}]}`))
		if err == nil {
			t.Fatal("expected an error, but got nil")
		}
		if !errors.Is(err, domain.ErrSchemaViolation) {
			t.Errorf("expected error to be ErrSchemaViolation, but got %T", err)
		}
		if !strings.Contains(err.Error(), "current_weather") {
			t.Errorf("expected error to name current_weather, but got: %v", err)
		}
	})

	t.Run("should reject out-of-range humidity and empty forecast together", func(t *testing.T) {
		_, err := ParseReport([]byte(`{
			"current_weather": {"location": "Lima", "condition": "Foggy", "humidity": 150},
			"forecast": []
		}`))
		if err == nil {
			t.Fatal("expected an error, but got nil")
		}
		if !errors.Is(err, domain.ErrSchemaViolation) {
			t.Errorf("expected error to be ErrSchemaViolation, but got %T", err)
		}
		msg := err.Error()
		if !strings.Contains(msg, "current_weather.humidity") {
			t.Errorf("expected error to name current_weather.humidity, but got: %v", err)
		}
		if !strings.Contains(msg, "forecast") {
			t.Errorf("expected error to name forecast, but got: %v", err)
		}
	})

	t.Run("should reject a wrong-typed field with its path", func(t *testing.T) {
		_, err := ParseReport([]byte(`{"current_weather": {"location": "Rome", "condition": "Sunny", "humidity": "high"}}`))
		if err == nil {
			t.Fatal("expected an error, but got nil")
		}
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("expected a *SchemaError, but got %T", err)
		}
		if schemaErr.Field != "current_weather.humidity" {
			t.Errorf("expected field path 'current_weather.humidity', but got %q", schemaErr.Field)
		}
	})

	t.Run("should reject negative wind speed", func(t *testing.T) {
		_, err := ParseReport([]byte(`{"current_weather": {"location": "Cape Town", "condition": "Windy", "wind_speed": -3}}`))
		if err == nil {
			t.Fatal("expected an error, but got nil")
		}
		if !strings.Contains(err.Error(), "current_weather.wind_speed") {
			t.Errorf("expected error to name current_weather.wind_speed, but got: %v", err)
		}
	})

	t.Run("should reject a forecast longer than 7 days", func(t *testing.T) {
		var b strings.Builder
		b.WriteString(`{"current_weather": {"location": "Kyoto", "condition": "Rain"}, "forecast": [`)
		for i := 0; i < 8; i++ {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`{"date": "2024-05-0` + string(rune('1'+i)) + `", "high_temp": 20, "low_temp": 10, "condition": "Rain"}`)
		}
		b.WriteString(`]}`)

		_, err := ParseReport([]byte(b.String()))
		if err == nil {
			t.Fatal("expected an error, but got nil")
		}
		if !errors.Is(err, domain.ErrSchemaViolation) {
			t.Errorf("expected error to be ErrSchemaViolation, but got %T", err)
		}
	})

	t.Run("should reject a forecast day missing a temperature", func(t *testing.T) {
		_, err := ParseReport([]byte(`{
			"current_weather": {"location": "Quito", "condition": "Mild"},
			"forecast": [{"date": "2024-05-01", "high_temp": 18, "condition": "Mild"}]
		}`))
		if err == nil {
			t.Fatal("expected an error, but got nil")
		}
		if !strings.Contains(err.Error(), "forecast[0].low_temp") {
			t.Errorf("expected error to name forecast[0].low_temp, but got: %v", err)
		}
	})

	t.Run("should reject input that is not JSON", func(t *testing.T) {
		_, err := ParseReport([]byte("tomorrow will be sunny"))
		if err == nil {
			t.Fatal("expected an error, but got nil")
		}
		if !errors.Is(err, domain.ErrSchemaViolation) {
			t.Errorf("expected error to be ErrSchemaViolation, but got %T", err)
		}
	})

	t.Run("should keep a zero temperature distinct from a missing one", func(t *testing.T) {
		rep, err := ParseReport([]byte(`{
			"current_weather": {"location": "Helsinki", "condition": "Snow", "current_temp": 0},
			"forecast": [{"date": "2024-05-01", "high_temp": 0, "low_temp": -5, "condition": "Snow"}]
		}`))
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if rep.CurrentWeather.CurrentTemp == nil || *rep.CurrentWeather.CurrentTemp != 0 {
			t.Errorf("expected current_temp to be 0, but got %v", rep.CurrentWeather.CurrentTemp)
		}
		if rep.Forecast[0].HighTemp == nil || *rep.Forecast[0].HighTemp != 0 {
			t.Errorf("expected high_temp to be 0, but got %v", rep.Forecast[0].HighTemp)
		}
	})
}

func TestReportJSONSchema(t *testing.T) {
	doc := ReportJSONSchema()

	required, ok := doc["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "current_weather" {
		t.Errorf("expected required to be [current_weather], but got %v", doc["required"])
	}

	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatal("expected properties to be a map")
	}
	for _, key := range []string{"current_weather", "forecast", "clothing_suggestions", "activity_recommendations"} {
		if _, ok := props[key]; !ok {
			t.Errorf("expected schema to declare property %q", key)
		}
	}

	forecast, ok := props["forecast"].(map[string]any)
	if !ok {
		t.Fatal("expected forecast schema to be a map")
	}
	if forecast["minItems"] != 1 || forecast["maxItems"] != 7 {
		t.Errorf("expected forecast bounds [1,7], but got min=%v max=%v", forecast["minItems"], forecast["maxItems"])
	}
}
