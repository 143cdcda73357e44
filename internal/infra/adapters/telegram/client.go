// File: internal/infra/adapters/telegram/client.go
package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

var _ adapter.TelegramBotAdapter = (*Client)(nil)

// Client implements the outbound bot port on top of the Telegram Bot API.
type Client struct {
	bot *tgbotapi.BotAPI
	log *zerolog.Logger
}

func NewClient(token string, logger *zerolog.Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("username", bot.Self.UserName).Msg("authorized on telegram")
	return &Client{bot: bot, log: logger}, nil
}

// Username returns the account name Telegram authorized this token for.
func (c *Client) Username() string { return c.bot.Self.UserName }

// API exposes the underlying client to the update pump.
func (c *Client) API() *tgbotapi.BotAPI { return c.bot }

// SendMessage sends Markdown text. When Telegram rejects the markup, the
// send is retried once as plain text so the user still gets a reply.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := c.bot.Send(msg); err != nil {
		if strings.Contains(err.Error(), "can't parse entities") {
			c.log.Debug().Int64("chat_id", chatID).Msg("markdown rejected, resending as plain text")
			_, err = c.bot.Send(tgbotapi.NewMessage(chatID, text))
		}
		return err
	}
	return nil
}

// SendButtons sends Markdown text with an inline keyboard.
// - If btn.URL is set, the button opens a link
// - Else the button sends callback data, falling back to the label
func (c *Client) SendButtons(ctx context.Context, chatID int64, text string, rows [][]adapter.InlineButton) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		r := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			label := strings.TrimSpace(btn.Text)
			if label == "" {
				label = "•"
			}
			var kb tgbotapi.InlineKeyboardButton
			switch {
			case btn.URL != "":
				kb = tgbotapi.NewInlineKeyboardButtonURL(label, btn.URL)
			case btn.Data != "":
				kb = tgbotapi.NewInlineKeyboardButtonData(label, btn.Data)
			default:
				kb = tgbotapi.NewInlineKeyboardButtonData(label, label)
			}
			r = append(r, kb)
		}
		kbRows = append(kbRows, r)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(kbRows...)
	_, err := c.bot.Send(msg)
	return err
}

// SendTyping shows the "typing…" indicator while a report is generated.
func (c *Client) SendTyping(ctx context.Context, chatID int64) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	_, err := c.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return err
}

// AnswerCallback stops the client-side spinner on an inline button.
func (c *Client) AnswerCallback(ctx context.Context, callbackID string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	_, err := c.bot.Request(tgbotapi.NewCallback(callbackID, ""))
	return err
}
