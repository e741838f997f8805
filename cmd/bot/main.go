package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/sammyshhilt/tgbot-service/internal/auth"
	"github.com/sammyshhilt/tgbot-service/internal/bot"
	"github.com/sammyshhilt/tgbot-service/internal/client"
	"github.com/sammyshhilt/tgbot-service/internal/config"
	"github.com/sammyshhilt/tgbot-service/internal/handler"
	"github.com/sammyshhilt/tgbot-service/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	svc := client.New(cfg.NotificationServiceURL, cfg.HTTPTimeout, logger)
	sessions := session.NewStore(cfg.Admins)
	pending := session.NewPendingStore()
	gate := auth.NewGate()

	tgBot, err := bot.New(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("telegram bot init: %v", err)
	}

	handler.Register(tgBot.API, svc, sessions, pending, gate, logger)

	logger.Info("Bot up and running 🚀")
	tgBot.Run()
}
