package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is a thin wrapper that exposes underlying API plus a blocking Run().
type Bot struct {
	API *tgbotapi.BotAPI
}

func New(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)

	if err != nil {
		return nil, err
	}

	api.Debug = false
	// set command menu similar to BotFather; /delete is admin-only and stays
	// out of the public menu
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "начать работу с ботом"},
		{Command: "help", Description: "справка по командам"},
		{Command: "new", Description: "создать заметку"},
		{Command: "find", Description: "найти заметки в календаре"},
		{Command: "search", Description: "поиск заметок по тексту"},
		{Command: "list", Description: "список ваших заметок"},
	}
	_, _ = api.Request(tgbotapi.NewSetMyCommands(commands...))
	return &Bot{API: api}, nil
}

// Run blocks forever; all handling goroutines are launched elsewhere.
func (b *Bot) Run() {
	select {}
}
