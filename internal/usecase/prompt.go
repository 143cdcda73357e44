// File: internal/usecase/prompt.go
package usecase

import "strings"

// systemPrompt pins the assistant to the weather task. The JSON shape itself
// travels in the user prompt and in the response schema handed to providers.
const systemPrompt = "You are a weather assistant. You reply with a single JSON document describing the weather and nothing else."

// promptShape is the JSON shape description embedded in every prompt.
const promptShape = `{
  "current_weather": {
    "location": "resolved place name (string, required)",
    "current_temp": "current temperature in Celsius (number, optional)",
    "condition": "short description of conditions (string, required)",
    "humidity": "relative humidity between 0 and 100 (integer, optional)",
    "wind_speed": "wind speed in km/h, never negative (number, optional)",
    "recommendations": ["general tips for the day (list of strings, optional)"]
  },
  "forecast": [
    {"date": "YYYY-MM-DD", "high_temp": 0, "low_temp": 0, "condition": "short description"}
  ],
  "clothing_suggestions": ["what to wear (list of strings, optional)"],
  "activity_recommendations": ["things to do (list of strings, optional)"]
}`

// BuildWeatherPrompt produces the user prompt for one weather request.
// Pure function of its inputs; callers must reject an empty location first.
func BuildWeatherPrompt(location, preferences string) string {
	var b strings.Builder
	b.WriteString("Provide the weather report for ")
	b.WriteString(location)
	b.WriteString(" for today.\n")
	if preferences != "" {
		b.WriteString("The user cares about: ")
		b.WriteString(preferences)
		b.WriteString(". Tailor the clothing and activity suggestions to that.\n")
	}
	b.WriteString("\nReturn a JSON object with exactly this shape:\n")
	b.WriteString(promptShape)
	b.WriteString("\n\nIf you include a forecast, give between 1 and 7 days starting today.\n")
	b.WriteString("Use metric units: temperatures in degrees Celsius, wind speed in km/h.\n")
	b.WriteString("Reply with valid JSON only, no additional keys, no prose, no code fences.")
	return b.String()
}
