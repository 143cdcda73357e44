// File: internal/infra/adapters/telegram/pump.go
package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/application"
	"telegram-weather-bot/internal/domain/ports/adapter"
	"telegram-weather-bot/internal/infra/worker"
)

// Dispatcher is the application core the pump feeds. Both delivery modes,
// long polling and webhook, end up on the same two entry points.
type Dispatcher interface {
	OnMessage(ctx context.Context, msg adapter.IncomingMessage) error
	OnCallback(ctx context.Context, cb adapter.IncomingCallback) error
}

var _ Dispatcher = (*application.BotFacade)(nil)

// UpdatePump receives Telegram updates and hands them to the dispatcher.
type UpdatePump struct {
	client  *Client
	disp    Dispatcher
	workers int
	log     *zerolog.Logger

	cancelPolling context.CancelFunc
}

func NewUpdatePump(client *Client, disp Dispatcher, workers int, logger *zerolog.Logger) *UpdatePump {
	if workers <= 0 {
		workers = 5
	}
	return &UpdatePump{client: client, disp: disp, workers: workers, log: logger}
}

// StartPolling long-polls Telegram and fans updates out to a small worker
// group. Blocks until the context is cancelled or StopPolling is called.
func (p *UpdatePump) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := p.client.API().GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	p.cancelPolling = cancel

	var wg sync.WaitGroup
	updateChan := make(chan tgbotapi.Update, 100)

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case up := <-updateChan:
					if err := p.handleUpdate(ctx, up); err != nil {
						p.log.Warn().Err(err).Int("worker", id).Msg("update handling failed")
					}
				}
			}
		}(i)
	}

	for {
		select {
		case <-ctx.Done():
			close(updateChan)
			wg.Wait()
			return ctx.Err()
		case up := <-updates:
			updateChan <- up
		}
	}
}

func (p *UpdatePump) StopPolling() {
	if p.cancelPolling != nil {
		p.cancelPolling()
	}
}

// handleUpdate converts a raw update into the port types. Failures stay
// inside the handling worker; they never tear the pump down.
func (p *UpdatePump) handleUpdate(ctx context.Context, up tgbotapi.Update) error {
	if q := up.CallbackQuery; q != nil {
		if q.From == nil {
			return errors.New("callback without sender")
		}
		chatID := q.From.ID
		if q.Message != nil && q.Message.Chat != nil {
			chatID = q.Message.Chat.ID
		}
		return p.disp.OnCallback(ctx, adapter.IncomingCallback{
			ID:     q.ID,
			ChatID: chatID,
			Data:   strings.TrimSpace(q.Data),
		})
	}

	if m := up.Message; m != nil {
		if m.From == nil || m.Chat == nil {
			return nil
		}
		return p.disp.OnMessage(ctx, adapter.IncomingMessage{
			ChatID: m.Chat.ID,
			Text:   m.Text,
		})
	}
	return nil
}

// RegisterWebhook points Telegram at publicURL for update delivery.
func (p *UpdatePump) RegisterWebhook(publicURL string) error {
	wh, err := tgbotapi.NewWebhook(publicURL)
	if err != nil {
		return err
	}
	if _, err := p.client.API().Request(wh); err != nil {
		return err
	}
	info, err := p.client.API().GetWebhookInfo()
	if err == nil && info.LastErrorDate != 0 {
		p.log.Warn().Str("last_error", info.LastErrorMessage).Msg("telegram webhook reported an earlier error")
	}
	p.log.Info().Str("url", publicURL).Msg("webhook registered")
	return nil
}

// RemoveWebhook switches the bot back to polling delivery.
func (p *UpdatePump) RemoveWebhook() error {
	_, err := p.client.API().Request(tgbotapi.DeleteWebhookConfig{})
	return err
}

// WebhookHandler decodes update envelopes POSTed by Telegram and submits
// them to the pool. The response is 200 no matter what so Telegram does not
// redeliver; anything else would queue bad payloads forever. Non-POST
// requests get a plain liveness line.
func (p *UpdatePump) WebhookHandler(pool *worker.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, "weather bot is up")
			return
		}

		var up tgbotapi.Update
		if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
			p.log.Warn().Err(err).Msg("undecodable webhook payload")
			w.WriteHeader(http.StatusOK)
			return
		}

		if err := pool.Submit(func(ctx context.Context) error {
			return p.handleUpdate(ctx, up)
		}); err != nil {
			p.log.Warn().Err(err).Msg("webhook update dropped")
		}
		w.WriteHeader(http.StatusOK)
	}
}
