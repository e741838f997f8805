package handler

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/sammyshhilt/tgbot-service/internal/auth"
	"github.com/sammyshhilt/tgbot-service/internal/model"
	"github.com/sammyshhilt/tgbot-service/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// fakeSender records outgoing messages and callback acks.
type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	acks int
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.mu.Lock()
		f.sent = append(f.sent, m)
		f.mu.Unlock()
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	f.acks++
	f.mu.Unlock()
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, m := range f.sent {
		out = append(out, m.Text)
	}
	return out
}

func (f *fakeSender) lastText() string {
	t := f.texts()
	if len(t) == 0 {
		return ""
	}
	return t[len(t)-1]
}

func (f *fakeSender) lastMarkup() interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return nil
	}
	return f.sent[len(f.sent)-1].ReplyMarkup
}

// fakeService counts every remote invocation and records mutations. Optional
// error fields turn individual calls into failures.
type fakeService struct {
	mu      sync.Mutex
	calls   int
	created []model.Notification
	deleted []string

	users        []model.UserRef
	notes        []model.Notification
	dayNotes     []model.Notification
	lastDay      int
	createErr    error
	deleteErr    error
	listUsersErr error
}

func (f *fakeService) bump() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeService) CreateUser(ctx context.Context, id int64, nickname string) error {
	f.bump()
	return nil
}

func (f *fakeService) DeleteUser(ctx context.Context, nickname string) error {
	f.bump()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	f.deleted = append(f.deleted, nickname)
	f.mu.Unlock()
	return nil
}

func (f *fakeService) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	f.bump()
	if f.createErr != nil {
		return model.Notification{}, f.createErr
	}
	f.mu.Lock()
	f.created = append(f.created, n)
	f.mu.Unlock()
	return n, nil
}

func (f *fakeService) ListNotifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	f.bump()
	return f.notes, nil
}

func (f *fakeService) SearchNotifications(ctx context.Context, text, day string) ([]model.Notification, error) {
	f.bump()
	return f.notes, nil
}

func (f *fakeService) SearchByUserAndDay(ctx context.Context, userID int64, day int) ([]model.Notification, error) {
	f.bump()
	f.mu.Lock()
	f.lastDay = day
	f.mu.Unlock()
	return f.dayNotes, nil
}

func (f *fakeService) ListUsersExcluding(ctx context.Context, requesterID int64) ([]model.UserRef, error) {
	f.bump()
	if f.listUsersErr != nil {
		return nil, f.listUsersErr
	}
	return f.users, nil
}

func (f *fakeService) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fixture struct {
	registry *Registry
	bot      *fakeSender
	svc      *fakeService
	sessions *session.Store
	pending  *session.PendingStore
}

func newFixture(admins ...string) *fixture {
	bot := &fakeSender{}
	svc := &fakeService{}
	sessions := session.NewStore(admins)
	pending := session.NewPendingStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		registry: New(bot, svc, sessions, pending, auth.NewGate(), logger),
		bot:      bot,
		svc:      svc,
		sessions: sessions,
		pending:  pending,
	}
}

func commandMsg(userID int64, nickname, text string) *tgbotapi.Message {
	cmdLen := len(text)
	if i := strings.Index(text, " "); i >= 0 {
		cmdLen = i
	}
	return &tgbotapi.Message{
		From:     &tgbotapi.User{ID: userID, UserName: nickname},
		Chat:     &tgbotapi.Chat{ID: userID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
	}
}

func textMsg(userID int64, nickname, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, UserName: nickname},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}
}

func tap(userID int64, nickname, payload string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb",
		From: &tgbotapi.User{ID: userID, UserName: nickname},
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: userID},
		},
		Data: payload,
	}
}
