package handler

import (
	"log/slog"

	"github.com/sammyshhilt/tgbot-service/internal/auth"
	"github.com/sammyshhilt/tgbot-service/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Registry wires inbound updates to handlers. Each update runs in its own
// goroutine; the stores are the only state shared between them, so a slow
// remote call for one user never delays another.
type Registry struct {
	bot      Sender
	svc      NotesService
	sessions *session.Store
	pending  *session.PendingStore
	gate     *auth.Gate
	log      *slog.Logger
}

func New(bot Sender, svc NotesService, sessions *session.Store, pending *session.PendingStore, gate *auth.Gate, log *slog.Logger) *Registry {
	return &Registry{
		bot:      bot,
		svc:      svc,
		sessions: sessions,
		pending:  pending,
		gate:     gate,
		log:      log,
	}
}

// Register binds message/callback handling and spawns the update loop.
func Register(api *tgbotapi.BotAPI, svc NotesService, sessions *session.Store, pending *session.PendingStore, gate *auth.Gate, log *slog.Logger) {
	r := New(api, svc, sessions, pending, gate, log)
	go r.listen(api) // background
}

func (r *Registry) listen(api *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := api.GetUpdatesChan(u)

	for upd := range updates {
		switch {
		case upd.Message != nil:
			go r.handleMessage(upd.Message)

		case upd.CallbackQuery != nil:
			go r.handleCallback(upd.CallbackQuery)
		}
	}
}
