// Package config holds the explicit configuration structure built once at
// startup and threaded into the components that need it.
package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Telegram struct {
	BotToken    string `env:"TELEGRAM_BOT_TOKEN"`
	LegacyToken string `env:"TELEGRAM_TOKEN"`
	ChatID      string `env:"TELEGRAM_CHAT_ID"`
}

// Token returns the bot token, preferring TELEGRAM_BOT_TOKEN over the older
// TELEGRAM_TOKEN name still used by existing deployments.
func (t Telegram) Token() string {
	if token := strings.TrimSpace(t.BotToken); token != "" {
		return token
	}
	return strings.TrimSpace(t.LegacyToken)
}

type OpenAI struct {
	ParamPrefix string `env:"PARAM_PREFIX" env-default:"/genai-bridge"`
	Model       string `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	BaseURL     string `env:"OPENAI_BASE_URL"`
}

type Memory struct {
	MaxTurns int `env:"MAX_MEMORY_TURNS" env-default:"20"`
}

type Config struct {
	Telegram Telegram
	OpenAI   OpenAI
	Memory   Memory
}

// Load reads configuration from the process environment. Required values are
// checked by each entrypoint, since the two binaries need different subsets.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}
	return &cfg, nil
}
