// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token       string `yaml:"token"`
	Mode        string `yaml:"mode"` // polling | webhook
	WebhookURL  string `yaml:"webhook_url"`
	WebhookPath string `yaml:"webhook_path"`
	Workers     int    `yaml:"workers"` // update workers
	Locale      string `yaml:"locale"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type AIConfig struct {
	OpenAIKey       string `yaml:"openai_key"`
	GeminiKey       string `yaml:"gemini_key"`
	GeminiURL       string `yaml:"gemini_url"`
	CompatKey       string `yaml:"compat_key"`
	CompatBaseURL   string `yaml:"compat_base_url"`
	DefaultModel    string `yaml:"default_model"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
	ConcurrentLimit int    `yaml:"concurrent_limit"` // max concurrent AI calls
}

type Config struct {
	Bot  BotConfig  `yaml:"bot"`
	Log  LogConfig  `yaml:"log"`
	HTTP HTTPConfig `yaml:"http"`
	AI   AIConfig   `yaml:"ai"`

	Runtime RuntimeConfig `yaml:"-"`
}

// LoadConfig reads the yaml file, then lets environment variables override
// the secrets so tokens never have to live in the file. In dev mode the
// token and key requirements relax; the noop adapters stand in.
func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// env overrides for secrets
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.OpenAIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AI.GeminiKey = v
	}
	if v := os.Getenv("COMPAT_API_KEY"); v != "" {
		cfg.AI.CompatKey = v
	}

	// defaults
	if cfg.Bot.Mode == "" {
		cfg.Bot.Mode = "polling"
	}
	if cfg.Bot.WebhookPath == "" {
		cfg.Bot.WebhookPath = "/telegram/webhook"
	}
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 8
	}
	if cfg.Bot.Locale == "" {
		cfg.Bot.Locale = "en"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.HTTP.Port <= 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.AI.DefaultModel == "" {
		cfg.AI.DefaultModel = "gpt-4o-mini"
	}
	if cfg.AI.MaxOutputTokens <= 0 {
		cfg.AI.MaxOutputTokens = 1024
	}
	if cfg.AI.ConcurrentLimit <= 0 {
		cfg.AI.ConcurrentLimit = 16
	}

	// Minimal validation
	if cfg.Bot.Token == "" && !dev {
		return nil, errors.New("bot.token is required")
	}
	if cfg.AI.OpenAIKey == "" && cfg.AI.GeminiKey == "" && cfg.AI.CompatKey == "" && !dev {
		return nil, errors.New("at least one ai key is required (openai, gemini or compat)")
	}
	if cfg.Bot.Mode == "webhook" && cfg.Bot.WebhookURL == "" {
		return nil, errors.New("bot.webhook_url is required in webhook mode")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
