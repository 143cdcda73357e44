package main

import (
	"context"
	"log"
	"time"

	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/application"
	"telegram-weather-bot/internal/domain/ports/adapter"
	aiAdapters "telegram-weather-bot/internal/infra/adapters/ai"
	tele "telegram-weather-bot/internal/infra/adapters/telegram"
	"telegram-weather-bot/internal/infra/i18n"
	"telegram-weather-bot/internal/usecase"
)

// Exercises the dispatcher end to end with the noop adapters, no
// Telegram token or AI key required.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	// 1. Translator
	translator, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	if err != nil {
		log.Fatalf("translator error: %v", err)
	}

	// 2. Canned AI behind the usual concurrency cap
	aiSvc := aiAdapters.NewLimitedAI(aiAdapters.NewNoopAIAdapter(), 4)
	weatherUC := usecase.NewWeatherUseCase(aiSvc, "noop-model", &logger)

	// 3. Console bot + dispatcher
	bot := tele.NewNoopBotAdapter()
	facade := application.NewBotFacade(weatherUC, bot, translator, &logger)

	// 4. A user asks for weather
	msg := adapter.IncomingMessage{ChatID: 42, Text: "/weather Paris, hiking"}
	if err := facade.OnMessage(ctx, msg); err != nil {
		log.Fatalf("message error: %v", err)
	}

	// 5. The same user taps the 3 Days button
	data, ok := application.EncodeCallback(application.ActionThreeDays, "Paris")
	if !ok {
		log.Fatalf("callback payload too long")
	}
	cb := adapter.IncomingCallback{ID: "demo-1", ChatID: 42, Data: data}
	if err := facade.OnCallback(ctx, cb); err != nil {
		log.Fatalf("callback error: %v", err)
	}

	log.Println("demo finished")
}
