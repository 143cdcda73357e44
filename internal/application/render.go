// File: internal/application/render.go
package application

import (
	"strconv"
	"strings"

	"telegram-weather-bot/internal/domain/model"
	"telegram-weather-bot/internal/infra/i18n"
)

// summaryForecastDays caps the forecast preview inside the summary message.
// The full forecast stays reachable through its button.
const summaryForecastDays = 3

// Renderer formats weather reports as Telegram Markdown messages. All texts
// come from the translator so locales stay swappable.
type Renderer struct {
	tr *i18n.Translator
}

func NewRenderer(tr *i18n.Translator) *Renderer {
	return &Renderer{tr: tr}
}

// Summary builds the main reply for a weather query. Optional fields that
// the report does not carry are left out rather than rendered as zeroes.
func (r *Renderer) Summary(rep *model.WeatherReport) string {
	if rep == nil || rep.CurrentWeather == nil {
		return ""
	}
	cw := rep.CurrentWeather

	var b strings.Builder
	b.WriteString(r.tr.T("summary_header", cw.Location))
	if cw.CurrentTemp != nil {
		b.WriteString("\n" + r.tr.T("temp_line", formatNum(*cw.CurrentTemp)))
	}
	b.WriteString("\n" + r.tr.T("condition_line", cw.Condition))
	if cw.Humidity != nil {
		b.WriteString("\n" + r.tr.T("humidity_line", *cw.Humidity))
	}
	if cw.WindSpeed != nil {
		b.WriteString("\n" + r.tr.T("wind_line", formatNum(*cw.WindSpeed)))
	}
	if len(rep.Forecast) > 0 {
		b.WriteString("\n\n" + r.forecastSection(rep.Forecast, summaryForecastDays, "forecast_header"))
	}
	if len(rep.ClothingSuggestions) > 0 {
		b.WriteString("\n\n" + r.bulletSection("clothing_header", rep.ClothingSuggestions))
	}
	if len(rep.ActivityRecommendations) > 0 {
		b.WriteString("\n\n" + r.bulletSection("activities_header", rep.ActivityRecommendations))
	}
	if len(cw.Recommendations) > 0 {
		b.WriteString("\n\n" + r.bulletSection("tips_header", cw.Recommendations))
	}
	return b.String()
}

// Day renders a single forecast day. Index 0 is today. Returns "" when the
// report has no forecast entry at that index.
func (r *Renderer) Day(rep *model.WeatherReport, index int) string {
	if rep == nil || index < 0 || index >= len(rep.Forecast) {
		return ""
	}
	d := rep.Forecast[index]
	var loc string
	if rep.CurrentWeather != nil {
		loc = rep.CurrentWeather.Location
	}
	return r.tr.T("day_header", loc, d.Date) + "\n" +
		r.tr.T("day_line", fmtTemp(d.HighTemp), fmtTemp(d.LowTemp), d.Condition)
}

// Forecast renders up to limit forecast entries.
func (r *Renderer) Forecast(rep *model.WeatherReport, limit int) string {
	if rep == nil || len(rep.Forecast) == 0 || limit <= 0 {
		return ""
	}
	return r.forecastSection(rep.Forecast, limit, "forecast_header")
}

// FullForecast renders every forecast entry the report carries.
func (r *Renderer) FullForecast(rep *model.WeatherReport) string {
	if rep == nil || len(rep.Forecast) == 0 {
		return ""
	}
	return r.forecastSection(rep.Forecast, len(rep.Forecast), "full_forecast_header")
}

// Clothing renders the clothing suggestions, or "" when the report has none.
func (r *Renderer) Clothing(rep *model.WeatherReport) string {
	if rep == nil || len(rep.ClothingSuggestions) == 0 {
		return ""
	}
	return r.bulletSection("clothing_header", rep.ClothingSuggestions)
}

// Activities renders the activity recommendations, or "" when absent.
func (r *Renderer) Activities(rep *model.WeatherReport) string {
	if rep == nil || len(rep.ActivityRecommendations) == 0 {
		return ""
	}
	return r.bulletSection("activities_header", rep.ActivityRecommendations)
}

func (r *Renderer) forecastSection(days []model.ForecastDay, limit int, headerKey string) string {
	if limit > len(days) {
		limit = len(days)
	}
	lines := make([]string, 0, limit+1)
	lines = append(lines, r.tr.T(headerKey))
	for _, d := range days[:limit] {
		lines = append(lines, r.tr.T("forecast_entry", d.Date, fmtTemp(d.HighTemp), fmtTemp(d.LowTemp), d.Condition))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) bulletSection(headerKey string, items []string) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, r.tr.T(headerKey))
	for _, it := range items {
		lines = append(lines, r.tr.T("bullet", it))
	}
	return strings.Join(lines, "\n")
}

// formatNum trims trailing zeros so 22.0 renders as "22" and 22.5 as "22.5".
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fmtTemp tolerates reports built without validation.
func fmtTemp(v *float64) string {
	if v == nil {
		return "?"
	}
	return formatNum(*v)
}
