package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sammyshhilt/tgbot-service/internal/calendar"
	"github.com/sammyshhilt/tgbot-service/internal/keyboard"
	"github.com/sammyshhilt/tgbot-service/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const noNickname = "Без имени"

func (r *Registry) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	ctx := context.Background()
	sess := r.sessions.GetOrCreate(msg.From.ID, nicknameOf(msg))

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			r.handleStart(ctx, sess, msg)
		case "help":
			r.handleHelp(sess, msg)
		case "new":
			r.sendCalendar(msg, calendar.ModeCreate)
		case "find":
			r.sendCalendar(msg, calendar.ModeSearch)
		case "search":
			r.handleSearch(ctx, msg)
		case "list":
			r.handleList(ctx, msg)
		case "delete":
			r.handleDelete(ctx, sess, msg)
		default:
			r.send(msg.Chat.ID, "Неизвестная команда. Введите /help для списка команд.")
		}
		return
	}

	r.handleNoteText(ctx, msg)
}

func (r *Registry) handleStart(ctx context.Context, sess *model.Session, msg *tgbotapi.Message) {
	r.log.Info("session started", "session", sess.Info())

	r.send(msg.Chat.ID, "Добро пожаловать! Это бот для операций с заметками, введите /help для списка команд.")

	// user registration is best-effort: the bot stays usable even when the
	// notification service is down
	if err := r.svc.CreateUser(ctx, sess.UserID, sess.Nickname); err != nil {
		r.log.Error("create user failed", "userId", sess.UserID, "nickname", sess.Nickname, "err", err)
	}
}

func (r *Registry) handleHelp(sess *model.Session, msg *tgbotapi.Message) {
	helpMessage := strings.Join([]string{
		"Доступные команды:",
		"",
		"/start - Начать работу с ботом.",
		"/new - Создать новую заметку. Сначала выберите дату, затем введите текст заметки.",
		"/search [текст] - Найти заметки по ключевому слову в тексте.",
		"/find - найти заметки в календаре",
		"/help - Вывести информацию обо всех командах.",
		"/list - список всех Ваших заметок",
	}, "\n")

	if r.gate.Require(sess, model.RoleAdmin) == nil {
		r.send(msg.Chat.ID, "У вас есть права админа: 'ADMIN'")
		helpMessage += "\n/delete - удалить пользователя за нарушения"
	}
	r.send(msg.Chat.ID, helpMessage)
}

func (r *Registry) sendCalendar(msg *tgbotapi.Message, mode calendar.Mode) {
	grid := calendar.Render(time.Now(), mode)
	reply := tgbotapi.NewMessage(msg.Chat.ID, calendar.Caption(mode))
	reply.ReplyMarkup = keyboard.Calendar(grid)
	if _, err := r.bot.Send(reply); err != nil {
		r.log.Error("send calendar failed", "chatId", msg.Chat.ID, "err", err)
	}
}

func (r *Registry) handleSearch(ctx context.Context, msg *tgbotapi.Message) {
	queryText := strings.TrimSpace(msg.CommandArguments())
	if queryText == "" {
		r.send(msg.Chat.ID, "Введите текст для поиска после команды /search.")
		return
	}

	results, err := r.svc.SearchNotifications(ctx, queryText, "")
	if err != nil {
		r.log.Error("search failed", "query", queryText, "err", err)
		r.send(msg.Chat.ID, "Не удалось выполнить поиск, попробуйте позже.")
		return
	}
	if len(results) == 0 {
		r.send(msg.Chat.ID, fmt.Sprintf("Заметки не найдены по запросу: %q.", queryText))
		return
	}
	r.send(msg.Chat.ID, "Результаты поиска:\n"+joinNotes(results))
}

func (r *Registry) handleList(ctx context.Context, msg *tgbotapi.Message) {
	notifications, err := r.svc.ListNotifications(ctx, msg.From.ID)
	if err != nil {
		r.log.Error("list failed", "userId", msg.From.ID, "err", err)
		r.send(msg.Chat.ID, "Не удалось получить список заметок, попробуйте позже.")
		return
	}
	if len(notifications) == 0 {
		r.send(msg.Chat.ID, "У вас нет сохраненных заметок.")
		return
	}
	for _, note := range notifications {
		r.send(msg.Chat.ID, fmt.Sprintf("Заметка: %s на день %d", note.Text, note.Day))
	}
}

func (r *Registry) handleDelete(ctx context.Context, sess *model.Session, msg *tgbotapi.Message) {
	if err := r.gate.Require(sess, model.RoleAdmin); err != nil {
		r.log.Info("attempt to have access to admin methods", "session", sess.Info())
		r.send(msg.Chat.ID, "You have not permissions for this command...")
		return
	}

	users, err := r.svc.ListUsersExcluding(ctx, sess.UserID)
	if err != nil {
		r.log.Error("list users failed", "requesterId", sess.UserID, "err", err)
		r.send(msg.Chat.ID, "Не удалось получить список пользователей, попробуйте позже.")
		return
	}
	if len(users) == 0 {
		r.send(msg.Chat.ID, "Нет пользователей для удаления.")
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Выберите пользователя для удаления:")
	reply.ReplyMarkup = keyboard.UserPicker(users)
	if _, err := r.bot.Send(reply); err != nil {
		r.log.Error("send user picker failed", "chatId", msg.Chat.ID, "err", err)
	}
}

// handleNoteText consumes the pending day, if any, and turns the free text
// into a notification. The pending day is gone after this call whether or not
// the remote save succeeds: a selection never survives its consuming event.
func (r *Registry) handleNoteText(ctx context.Context, msg *tgbotapi.Message) {
	day, ok := r.pending.Take(msg.From.ID)
	if !ok {
		r.send(msg.Chat.ID, "Пожалуйста, выберите дату перед вводом текста заметки.")
		return
	}

	notification := model.Notification{Text: msg.Text, Day: day, UserID: msg.From.ID}
	if _, err := r.svc.CreateNotification(ctx, notification); err != nil {
		r.log.Error("create notification failed", "userId", msg.From.ID, "day", day, "err", err)
		r.send(msg.Chat.ID, fmt.Sprintf("Не удалось сохранить заметку на день %d, попробуйте позже.", day))
		return
	}
	r.send(msg.Chat.ID, fmt.Sprintf("Заметка сохранена на день %d.", day))
}

func (r *Registry) send(chatID int64, text string) {
	if _, err := r.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.log.Error("send message failed", "chatId", chatID, "err", err)
	}
}

func nicknameOf(msg *tgbotapi.Message) string {
	if msg.From.UserName == "" {
		return noNickname
	}
	return msg.From.UserName
}

func joinNotes(notes []model.Notification) string {
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		lines = append(lines, fmt.Sprintf("%d: %s", n.Day, n.Text))
	}
	return strings.Join(lines, "\n")
}
