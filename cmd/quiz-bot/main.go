package main

import (
	"context"

	"cryptoquiz/internal/config"
	"cryptoquiz/internal/deck"
	"cryptoquiz/internal/telegram"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel)

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	questions, err := deck.Resolve(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to load question deck")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, questions, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to Telegram")
	}

	bot.Start()
}
