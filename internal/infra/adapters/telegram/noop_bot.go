package telegram

import (
	"context"
	"log"
	"time"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

var _ adapter.TelegramBotAdapter = (*NoopBotAdapter)(nil)

// NoopBotAdapter implements adapter.TelegramBotAdapter for local/dev runs.
// It logs messages instead of talking to Telegram.
type NoopBotAdapter struct{}

// NewNoopBotAdapter constructs the noop adapter.
func NewNoopBotAdapter() *NoopBotAdapter {
	return &NoopBotAdapter{}
}

// SendMessage logs the message and simulates a small delay.
func (b *NoopBotAdapter) SendMessage(ctx context.Context, chatID int64, text string) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Printf("[noop-telegram] To chat %d:\n%s\n", chatID, text)
	return nil
}

func (b *NoopBotAdapter) SendButtons(ctx context.Context, chatID int64, text string, rows [][]adapter.InlineButton) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Printf("[noop-telegram] To chat %d:\n%s\n", chatID, text)
	for _, row := range rows {
		for _, btn := range row {
			log.Printf("[noop-telegram]   [%s] -> %s", btn.Text, btn.Data)
		}
	}
	return nil
}

// SendTyping logs the typing indicator.
func (b *NoopBotAdapter) SendTyping(ctx context.Context, chatID int64) error {
	log.Printf("[noop-telegram] typing... (chat %d)", chatID)
	return nil
}

// AnswerCallback logs the callback acknowledgement.
func (b *NoopBotAdapter) AnswerCallback(ctx context.Context, callbackID string) error {
	log.Printf("[noop-telegram] answered callback %s", callbackID)
	return nil
}
