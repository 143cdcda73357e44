//go:build !integration

// File: internal/application/render_test.go
package application_test

import (
	"strings"
	"testing"

	"telegram-weather-bot/internal/application"
	"telegram-weather-bot/internal/domain/model"
	"telegram-weather-bot/internal/infra/i18n"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func newTestRenderer(t *testing.T) *application.Renderer {
	t.Helper()
	tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	if err != nil {
		t.Fatalf("load translator: %v", err)
	}
	return application.NewRenderer(tr)
}

func fullReport() *model.WeatherReport {
	return &model.WeatherReport{
		CurrentWeather: &model.WeatherInfo{
			Location:        "Paris",
			CurrentTemp:     fptr(22.5),
			Condition:       "Partly cloudy",
			Humidity:        iptr(60),
			WindSpeed:       fptr(12),
			Recommendations: []string{"Take an umbrella"},
		},
		Forecast: []model.ForecastDay{
			{Date: "2026-08-22", HighTemp: fptr(24), LowTemp: fptr(15), Condition: "Sunny"},
			{Date: "2026-08-23", HighTemp: fptr(25.5), LowTemp: fptr(16), Condition: "Cloudy"},
			{Date: "2026-08-24", HighTemp: fptr(23), LowTemp: fptr(14), Condition: "Rain"},
			{Date: "2026-08-25", HighTemp: fptr(21), LowTemp: fptr(13), Condition: "Rain"},
			{Date: "2026-08-26", HighTemp: fptr(22), LowTemp: fptr(14), Condition: "Sunny"},
		},
		ClothingSuggestions:     []string{"Light jacket", "Comfortable shoes"},
		ActivityRecommendations: []string{"Walk along the Seine"},
	}
}

func TestRendererSummary(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("should include every populated section", func(t *testing.T) {
		out := r.Summary(fullReport())
		for _, want := range []string{
			"Weather in Paris",
			"22.5°C",
			"Partly cloudy",
			"Humidity: 60%",
			"Wind: 12 km/h",
			"Forecast:",
			"2026-08-22: 24°/15° - Sunny",
			"What to wear:",
			"• Light jacket",
			"Things to do:",
			"• Walk along the Seine",
			"Tips:",
			"• Take an umbrella",
		} {
			if !strings.Contains(out, want) {
				t.Fatalf("summary missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("should cap the forecast preview at three days", func(t *testing.T) {
		out := r.Summary(fullReport())
		if !strings.Contains(out, "2026-08-24") {
			t.Fatalf("third day missing:\n%s", out)
		}
		if strings.Contains(out, "2026-08-25") {
			t.Fatalf("fourth day should not appear in summary:\n%s", out)
		}
	})

	t.Run("should omit sections for absent data", func(t *testing.T) {
		rep := &model.WeatherReport{
			CurrentWeather: &model.WeatherInfo{Location: "Oslo", Condition: "Snow"},
		}
		out := r.Summary(rep)
		if !strings.Contains(out, "Weather in Oslo") || !strings.Contains(out, "Snow") {
			t.Fatalf("summary missing base lines:\n%s", out)
		}
		for _, banned := range []string{"Temperature", "Humidity", "Wind", "Forecast", "What to wear", "Things to do", "Tips"} {
			if strings.Contains(out, banned) {
				t.Fatalf("summary rendered %q for absent data:\n%s", banned, out)
			}
		}
	})

	t.Run("should render whole-degree temperatures without decimals", func(t *testing.T) {
		rep := &model.WeatherReport{
			CurrentWeather: &model.WeatherInfo{Location: "Oslo", CurrentTemp: fptr(22.0), Condition: "Clear"},
		}
		if out := r.Summary(rep); !strings.Contains(out, "22°C") || strings.Contains(out, "22.0") {
			t.Fatalf("unexpected temperature rendering:\n%s", out)
		}
	})

	t.Run("should keep a zero temperature distinct from a missing one", func(t *testing.T) {
		rep := &model.WeatherReport{
			CurrentWeather: &model.WeatherInfo{Location: "Oslo", CurrentTemp: fptr(0), Condition: "Freezing"},
		}
		if out := r.Summary(rep); !strings.Contains(out, "Temperature: 0°C") {
			t.Fatalf("zero temperature not rendered:\n%s", out)
		}
	})

	t.Run("should return empty text for a nil report", func(t *testing.T) {
		if out := r.Summary(nil); out != "" {
			t.Fatalf("expected empty, got %q", out)
		}
	})
}

func TestRendererNarrowViews(t *testing.T) {
	r := newTestRenderer(t)
	rep := fullReport()

	t.Run("should render a single day with location and date", func(t *testing.T) {
		out := r.Day(rep, 1)
		if !strings.Contains(out, "Paris") || !strings.Contains(out, "2026-08-23") {
			t.Fatalf("day view missing header parts:\n%s", out)
		}
		if !strings.Contains(out, "High 25.5° / Low 16° - Cloudy") {
			t.Fatalf("day view missing detail line:\n%s", out)
		}
	})

	t.Run("should return empty text for an out-of-range day", func(t *testing.T) {
		if out := r.Day(rep, 9); out != "" {
			t.Fatalf("expected empty, got %q", out)
		}
		if out := r.Day(&model.WeatherReport{CurrentWeather: rep.CurrentWeather}, 0); out != "" {
			t.Fatalf("expected empty without forecast, got %q", out)
		}
	})

	t.Run("should limit the forecast view", func(t *testing.T) {
		out := r.Forecast(rep, 3)
		if strings.Count(out, "\n") != 3 {
			t.Fatalf("expected header plus three lines:\n%s", out)
		}
	})

	t.Run("should render the full forecast", func(t *testing.T) {
		out := r.FullForecast(rep)
		for _, d := range rep.Forecast {
			if !strings.Contains(out, d.Date) {
				t.Fatalf("full forecast missing %s:\n%s", d.Date, out)
			}
		}
	})

	t.Run("should render clothing and activities as bullets", func(t *testing.T) {
		if out := r.Clothing(rep); !strings.Contains(out, "• Comfortable shoes") {
			t.Fatalf("clothing view:\n%s", out)
		}
		if out := r.Activities(rep); !strings.Contains(out, "• Walk along the Seine") {
			t.Fatalf("activities view:\n%s", out)
		}
	})

	t.Run("should return empty text when a view has no data", func(t *testing.T) {
		bare := &model.WeatherReport{CurrentWeather: &model.WeatherInfo{Location: "Oslo", Condition: "Snow"}}
		if out := r.Clothing(bare); out != "" {
			t.Fatalf("expected empty clothing view, got %q", out)
		}
		if out := r.Activities(bare); out != "" {
			t.Fatalf("expected empty activities view, got %q", out)
		}
		if out := r.FullForecast(bare); out != "" {
			t.Fatalf("expected empty forecast view, got %q", out)
		}
	})
}
