package handler

import (
	"context"

	"github.com/sammyshhilt/tgbot-service/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the slice of the Telegram API the handlers need: sending replies
// and acknowledging callbacks. *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// NotesService is the outbound port to the notification service. All durable
// state lives behind it.
type NotesService interface {
	CreateUser(ctx context.Context, id int64, nickname string) error
	DeleteUser(ctx context.Context, nickname string) error
	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error)
	ListNotifications(ctx context.Context, userID int64) ([]model.Notification, error)
	SearchNotifications(ctx context.Context, text, day string) ([]model.Notification, error)
	SearchByUserAndDay(ctx context.Context, userID int64, day int) ([]model.Notification, error)
	ListUsersExcluding(ctx context.Context, requesterID int64) ([]model.UserRef, error)
}
