package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core secrets
	BotToken  string `env:"BOT_TOKEN"`
	OpenAIKey string `env:"OPENAI_API_KEY,required"`

	// Completion service
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Server
	Port int `env:"PORT" envDefault:"3000"`

	// Webhook delivery; empty WebhookURL switches the bot to long polling.
	WebhookURL    string `env:"WEBHOOK_URL"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`

	// When false, apology/placeholder fallback replies are sent to the user
	// but never recorded as assistant turns in history.
	PersistFallbackReplies bool `env:"PERSIST_FALLBACK_REPLIES" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// TELEGRAM_BOT_TOKEN is accepted as a legacy alias.
	if cfg.BotToken == "" {
		cfg.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if cfg.BotToken == "" {
		return nil, errors.New("telegram bot token missing: set BOT_TOKEN or TELEGRAM_BOT_TOKEN")
	}
	return cfg, nil
}
