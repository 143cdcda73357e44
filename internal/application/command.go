// File: internal/application/command.go
package application

import (
	"strings"
	"unicode"
)

// WeatherCommand is the parsed form of a user message that asks for weather.
type WeatherCommand struct {
	Location    string
	Preferences string
}

// IsWeatherQuery reports whether a message text should be treated as a
// weather request. Matching is case-insensitive.
func IsWeatherQuery(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	if cmd, _ := splitCommand(t); cmd == "/weather" || cmd == "/w" {
		return true
	}
	return strings.Contains(t, "weather")
}

// ParseWeatherCommand extracts the location and optional preferences from
// a weather request. The command token (/weather or /w, with an optional
// @botname suffix) is stripped; the remainder splits on the first
// separator (comma, semicolon or pipe) into location and preferences.
// Further separators belong to the preferences text, joined by spaces.
func ParseWeatherCommand(text string) WeatherCommand {
	rest := strings.TrimSpace(text)
	if cmd, tail := splitCommand(rest); cmd == "/weather" || cmd == "/w" {
		rest = tail
	}

	segs := splitPreferences(rest)
	out := WeatherCommand{Location: strings.TrimSpace(segs[0])}

	var prefs []string
	for _, s := range segs[1:] {
		if p := strings.TrimSpace(s); p != "" {
			prefs = append(prefs, p)
		}
	}
	out.Preferences = strings.Join(prefs, " ")
	return out
}

// splitCommand takes the first whitespace-delimited token of text, strips a
// trailing @botname, and returns it lowercased plus the trimmed remainder.
func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}
	end := strings.IndexFunc(text, unicode.IsSpace)
	if end < 0 {
		end = len(text)
	}
	cmd := text[:end]
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), strings.TrimSpace(text[end:])
}

// splitPreferences splits on every separator, preserving empty segments so
// that a bare "/weather" yields an empty location rather than none.
func splitPreferences(s string) []string {
	segs := []string{}
	var cur strings.Builder
	for _, r := range s {
		switch r {
		case ',', ';', '|':
			segs = append(segs, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(segs, cur.String())
}
