// File: internal/application/bot_facade.go
package application

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/domain/model"
	"telegram-weather-bot/internal/domain/ports/adapter"
	"telegram-weather-bot/internal/infra/i18n"
	"telegram-weather-bot/internal/infra/logging"
	"telegram-weather-bot/internal/infra/metrics"
	"telegram-weather-bot/internal/usecase"
)

// BotFacade is the dispatcher core behind the transport adapters. Every
// inbound update, whether long-polled or webhook-delivered, lands on
// OnMessage or OnCallback; replies go out through the bot port. Updates are
// stateless: nothing is remembered between an update and the next.
type BotFacade struct {
	weather usecase.WeatherUseCase
	bot     adapter.TelegramBotAdapter
	render  *Renderer
	tr      *i18n.Translator
	log     *zerolog.Logger
}

func NewBotFacade(weather usecase.WeatherUseCase, bot adapter.TelegramBotAdapter, tr *i18n.Translator, logger *zerolog.Logger) *BotFacade {
	return &BotFacade{
		weather: weather,
		bot:     bot,
		render:  NewRenderer(tr),
		tr:      tr,
		log:     logger,
	}
}

// keyboardLayout pairs button caption keys with their callback actions,
// two buttons per row.
var keyboardLayout = [][]struct {
	Key    string
	Action CallbackAction
}{
	{{"btn_today", ActionToday}, {"btn_tomorrow", ActionTomorrow}},
	{{"btn_3days", ActionThreeDays}, {"btn_clothing", ActionClothing}},
	{{"btn_activities", ActionActivities}, {"btn_full", ActionFullForecast}},
}

// OnMessage handles a plain chat message. Non-weather texts are ignored so
// the bot can sit quietly in group chats.
func (f *BotFacade) OnMessage(ctx context.Context, msg adapter.IncomingMessage) error {
	ctx = logging.WithTraceID(ctx, uuid.NewString())
	ctx = logging.WithChatID(ctx, msg.ChatID)
	log := logging.With(ctx, f.log)

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		metrics.IncUpdate("message", "ignored")
		return nil
	}

	switch c, _ := splitCommand(text); c {
	case "/start":
		metrics.IncUpdate("message", "ok")
		return f.bot.SendMessage(ctx, msg.ChatID, f.tr.T("start_welcome"))
	case "/help":
		metrics.IncUpdate("message", "ok")
		return f.bot.SendMessage(ctx, msg.ChatID, f.tr.T("help"))
	}

	if !IsWeatherQuery(text) {
		metrics.IncUpdate("message", "ignored")
		return nil
	}

	cmd := ParseWeatherCommand(text)
	if cmd.Location == "" {
		metrics.IncUpdate("message", "rejected")
		return f.bot.SendMessage(ctx, msg.ChatID, f.tr.T("usage_hint"))
	}

	// Best effort; the reply itself matters, the indicator does not.
	if err := f.bot.SendTyping(ctx, msg.ChatID); err != nil {
		log.Debug().Err(err).Msg("send typing failed")
	}

	rep, err := f.weather.Fetch(ctx, usecase.WeatherQuery{Location: cmd.Location, Preferences: cmd.Preferences})
	if err != nil {
		metrics.IncUpdate("message", "failed")
		log.Warn().Err(err).Str("location", cmd.Location).Msg("weather fetch failed")
		return f.bot.SendMessage(ctx, msg.ChatID, f.tr.T("apology"))
	}
	metrics.IncUpdate("message", "ok")

	summary := f.render.Summary(rep)
	rows, ok := f.actionKeyboard(cmd.Location)
	if !ok {
		log.Debug().Str("location", cmd.Location).Msg("callback payload over limit, replying without buttons")
		return f.bot.SendMessage(ctx, msg.ChatID, summary)
	}
	return f.bot.SendButtons(ctx, msg.ChatID, summary, rows)
}

// OnCallback handles an inline button press. The callback is acknowledged
// before any work so the client spinner stops regardless of outcome.
func (f *BotFacade) OnCallback(ctx context.Context, cb adapter.IncomingCallback) error {
	ctx = logging.WithTraceID(ctx, uuid.NewString())
	ctx = logging.WithChatID(ctx, cb.ChatID)
	log := logging.With(ctx, f.log)

	if err := f.bot.AnswerCallback(ctx, cb.ID); err != nil {
		log.Debug().Err(err).Msg("answer callback failed")
	}

	action, location, ok := DecodeCallback(cb.Data)
	if !ok || strings.TrimSpace(location) == "" {
		metrics.IncUpdate("callback", "rejected")
		log.Warn().Str("data", cb.Data).Msg("malformed callback payload")
		return nil
	}

	var renderFn func(*model.WeatherReport) string
	switch action {
	case ActionToday:
		renderFn = func(rep *model.WeatherReport) string { return f.render.Day(rep, 0) }
	case ActionTomorrow:
		renderFn = func(rep *model.WeatherReport) string { return f.render.Day(rep, 1) }
	case ActionThreeDays:
		renderFn = func(rep *model.WeatherReport) string { return f.render.Forecast(rep, summaryForecastDays) }
	case ActionClothing:
		renderFn = f.render.Clothing
	case ActionActivities:
		renderFn = f.render.Activities
	case ActionFullForecast:
		renderFn = f.render.FullForecast
	default:
		metrics.IncUpdate("callback", "rejected")
		log.Warn().Str("action", string(action)).Msg("unknown callback action")
		return nil
	}
	metrics.IncCallbackAction(string(action))

	rep, err := f.weather.Fetch(ctx, usecase.WeatherQuery{Location: location})
	if err != nil {
		metrics.IncUpdate("callback", "failed")
		log.Warn().Err(err).Str("location", location).Msg("weather fetch failed")
		return f.bot.SendMessage(ctx, cb.ChatID, f.tr.T("apology"))
	}
	metrics.IncUpdate("callback", "ok")

	text := renderFn(rep)
	if text == "" {
		// The report simply has no data for this view. Stay quiet.
		log.Debug().Str("action", string(action)).Msg("nothing to render for callback")
		return nil
	}
	return f.bot.SendMessage(ctx, cb.ChatID, text)
}

// actionKeyboard builds the six-button layout shown under a summary.
// Returns false when the location does not fit the callback payload limit;
// the summary then goes out without buttons.
func (f *BotFacade) actionKeyboard(location string) ([][]adapter.InlineButton, bool) {
	rows := make([][]adapter.InlineButton, 0, len(keyboardLayout))
	for _, lr := range keyboardLayout {
		row := make([]adapter.InlineButton, 0, len(lr))
		for _, b := range lr {
			data, ok := EncodeCallback(b.Action, location)
			if !ok {
				return nil, false
			}
			row = append(row, adapter.InlineButton{Text: f.tr.T(b.Key), Data: data})
		}
		rows = append(rows, row)
	}
	return rows, true
}
