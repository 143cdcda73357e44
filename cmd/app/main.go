// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"telegram-weather-bot/internal/application"
	"telegram-weather-bot/internal/config"
	"telegram-weather-bot/internal/domain/ports/adapter"
	aiAdapters "telegram-weather-bot/internal/infra/adapters/ai"
	tele "telegram-weather-bot/internal/infra/adapters/telegram"
	httpapi "telegram-weather-bot/internal/infra/http"
	"telegram-weather-bot/internal/infra/i18n"
	"telegram-weather-bot/internal/infra/logging"
	"telegram-weather-bot/internal/infra/metrics"
	"telegram-weather-bot/internal/infra/worker"
	"telegram-weather-bot/internal/usecase"
)

// Populated via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (canned AI replies when no key is set)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logging & metrics ----
	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("dev mode enabled")
	}
	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Translator ----
	translator, err := i18n.NewTranslator(i18n.LocalesFS, cfg.Bot.Locale)
	if err != nil {
		logger.Fatal().Err(err).Str("locale", cfg.Bot.Locale).Msg("load locale")
	}

	// ---- AI Adapter (openai / gemini / compat) ----
	providers := map[string]adapter.AIServiceAdapter{}
	if cfg.AI.OpenAIKey != "" {
		a, err := aiAdapters.NewOpenAIAdapter(cfg.AI.OpenAIKey, cfg.AI.DefaultModel, cfg.AI.MaxOutputTokens)
		if err != nil {
			logger.Fatal().Err(err).Msg("openai adapter")
		}
		providers["openai"] = a
	}
	if cfg.AI.GeminiKey != "" {
		a, err := aiAdapters.NewGeminiAdapter(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiURL, cfg.AI.DefaultModel, cfg.AI.MaxOutputTokens)
		if err != nil {
			logger.Fatal().Err(err).Msg("gemini adapter")
		}
		providers["gemini"] = a
	}
	if cfg.AI.CompatKey != "" && cfg.AI.CompatBaseURL != "" {
		a, err := aiAdapters.NewCompatAdapter(cfg.AI.CompatKey, cfg.AI.CompatBaseURL, cfg.AI.DefaultModel, cfg.AI.MaxOutputTokens)
		if err != nil {
			logger.Fatal().Err(err).Msg("compat adapter")
		}
		providers["compat"] = a
	}

	var aiSvc adapter.AIServiceAdapter
	switch len(providers) {
	case 0:
		if !cfg.Runtime.Dev {
			logger.Fatal().Msgf("no AI provider configured: set ai.compat_key, ai.gemini_key or ai.openai_key in %s", *cfgPath)
		}
		logger.Warn().Msg("dev mode without AI keys; serving canned reports")
		aiSvc = aiAdapters.NewNoopAIAdapter()
	case 1:
		for _, a := range providers {
			aiSvc = a
		}
	default:
		// Default provider precedence: compat -> gemini -> openai.
		defProv := "compat"
		if providers[defProv] == nil {
			defProv = "gemini"
		}
		if providers[defProv] == nil {
			defProv = "openai"
		}
		aiSvc = aiAdapters.NewMultiAIAdapter(defProv, providers)
	}
	aiSvc = aiAdapters.NewLimitedAI(aiSvc, cfg.AI.ConcurrentLimit)
	logger.Info().Str("provider", aiSvc.Provider()).Str("model", cfg.AI.DefaultModel).Msg("ai adapter ready")

	// ---- Use case & dispatcher ----
	weatherUC := usecase.NewWeatherUseCase(aiSvc, cfg.AI.DefaultModel, logger)

	client, err := tele.NewClient(cfg.Bot.Token, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram")
	}
	metrics.SetBotInfo(client.Username())

	facade := application.NewBotFacade(weatherUC, client, translator, logger)
	pump := tele.NewUpdatePump(client, facade, cfg.Bot.Workers, logger)

	pool := worker.NewPool(cfg.Bot.Workers, logger)
	pool.Start(ctx)

	// ---- Update delivery: webhook or polling ----
	var webhookHandler http.HandlerFunc
	switch strings.ToLower(cfg.Bot.Mode) {
	case "webhook":
		link := strings.TrimRight(cfg.Bot.WebhookURL, "/") + cfg.Bot.WebhookPath
		if err := pump.RegisterWebhook(link); err != nil {
			logger.Fatal().Err(err).Msg("register webhook")
		}
		defer func() {
			if err := pump.RemoveWebhook(); err != nil {
				logger.Warn().Err(err).Msg("remove webhook")
			}
		}()
		webhookHandler = pump.WebhookHandler(pool)
	default:
		if strings.ToLower(cfg.Bot.Mode) != "polling" {
			logger.Warn().Str("mode", cfg.Bot.Mode).Msg("unknown bot.mode; falling back to polling")
		}
		// A leftover webhook blocks getUpdates.
		if err := pump.RemoveWebhook(); err != nil {
			logger.Debug().Err(err).Msg("webhook cleanup")
		}
		go func() {
			if err := pump.StartPolling(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msg("telegram polling stopped")
			}
		}()
	}

	// ---- HTTP server (health, metrics, webhook) ----
	srv := httpapi.NewServer(cfg.HTTP.Port, cfg.Bot.WebhookPath, webhookHandler, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("http shutdown")
	}
	pump.StopPolling()
	pool.Stop()
}
