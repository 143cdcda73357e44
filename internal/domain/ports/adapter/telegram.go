// File: internal/domain/ports/adapter/telegram.go
package adapter

import "context"

type InlineButton struct {
	Text string
	Data string
	URL  string
}

// IncomingMessage is a plain text message received from a chat.
type IncomingMessage struct {
	ChatID int64
	Text   string
}

// IncomingCallback is a button press received from a chat.
type IncomingCallback struct {
	ID     string
	ChatID int64
	Data   string
}

type TelegramBotAdapter interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendButtons(ctx context.Context, chatID int64, text string, rows [][]InlineButton) error
	SendTyping(ctx context.Context, chatID int64) error
	AnswerCallback(ctx context.Context, callbackID string) error
}
