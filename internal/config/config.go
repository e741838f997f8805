package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const tokenSecretPath = "/run/secrets/telegram_bot_token"

type Config struct {
	TelegramToken          string        `env:"TELEGRAM_BOT_TOKEN"`
	NotificationServiceURL string        `env:"NOTIFICATION_SERVICE_URL,notEmpty"`
	Admins                 []string      `env:"BOT_ADMINS" envSeparator:","`
	HTTPTimeout            time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

// Load parses the environment. The bot token may alternatively come from a
// Docker secret, which takes precedence over the variable.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if data, err := os.ReadFile(tokenSecretPath); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			cfg.TelegramToken = token
		}
	}
	if cfg.TelegramToken == "" {
		return Config{}, fmt.Errorf("telegram token missing: set TELEGRAM_BOT_TOKEN or mount %s", tokenSecretPath)
	}
	return cfg, nil
}
