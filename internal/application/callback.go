// File: internal/application/callback.go
package application

import (
	"net/url"
	"strings"
)

// CallbackAction identifies which inline button was pressed.
type CallbackAction string

const (
	ActionToday        CallbackAction = "today"
	ActionTomorrow     CallbackAction = "tomorrow"
	ActionThreeDays    CallbackAction = "3days"
	ActionClothing     CallbackAction = "clothing"
	ActionActivities   CallbackAction = "activities"
	ActionFullForecast CallbackAction = "full"
)

// maxCallbackData is Telegram's cap on callback_data, in bytes.
const maxCallbackData = 64

// EncodeCallback builds the callback payload "<action>_<escaped location>".
// The location is query-escaped so its own underscores cannot be confused
// with the separator. Returns false when the payload would exceed Telegram's
// size cap; callers should then skip the button.
func EncodeCallback(action CallbackAction, location string) (string, bool) {
	data := string(action) + "_" + url.QueryEscape(location)
	if len(data) > maxCallbackData {
		return "", false
	}
	return data, true
}

// DecodeCallback splits a callback payload at the first underscore. Action
// tokens never contain underscores, so everything after it is the location.
// Payloads from older clients may carry an unescaped location; those decode
// as-is.
func DecodeCallback(data string) (CallbackAction, string, bool) {
	action, rest, found := strings.Cut(data, "_")
	if !found || action == "" {
		return "", "", false
	}
	loc, err := url.QueryUnescape(rest)
	if err != nil {
		loc = rest
	}
	return CallbackAction(action), loc, true
}
