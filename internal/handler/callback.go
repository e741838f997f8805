package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sammyshhilt/tgbot-service/internal/calendar"
	"github.com/sammyshhilt/tgbot-service/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type callbackKind int

const (
	kindIgnore callbackKind = iota
	kindDay
	kindUser
)

// callbackAction is the classified meaning of a button-tap payload.
type callbackAction struct {
	kind     callbackKind
	mode     calendar.Mode
	day      int
	nickname string
}

// classify resolves a callback payload by its token namespace. The mode rides
// inside the day token, so no prior message text is ever consulted. Anything
// malformed is ignored rather than guessed at.
func classify(payload string) callbackAction {
	if payload == "" || payload == calendar.IgnoreToken {
		return callbackAction{kind: kindIgnore}
	}

	if rest, ok := strings.CutPrefix(payload, "day:"); ok {
		mode, dayStr, ok := strings.Cut(rest, ":")
		if !ok {
			return callbackAction{kind: kindIgnore}
		}
		m := calendar.Mode(mode)
		if m != calendar.ModeCreate && m != calendar.ModeSearch {
			return callbackAction{kind: kindIgnore}
		}
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 1 || day > 31 {
			return callbackAction{kind: kindIgnore}
		}
		return callbackAction{kind: kindDay, mode: m, day: day}
	}

	if nickname, ok := strings.CutPrefix(payload, "user:"); ok && nickname != "" {
		return callbackAction{kind: kindUser, nickname: nickname}
	}

	return callbackAction{kind: kindIgnore}
}

func (r *Registry) handleCallback(callback *tgbotapi.CallbackQuery) {
	// always acknowledge, even for taps we ignore, or the client keeps the
	// button in a loading state
	defer func() {
		if _, err := r.bot.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
			r.log.Error("callback ack failed", "callbackId", callback.ID, "err", err)
		}
	}()

	if callback.Message == nil {
		return
	}
	ctx := context.Background()
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	nickname := callback.From.UserName
	if nickname == "" {
		nickname = noNickname
	}
	sess := r.sessions.GetOrCreate(userID, nickname)

	action := classify(callback.Data)
	switch action.kind {
	case kindDay:
		if action.mode == calendar.ModeSearch {
			r.handleDaySearch(ctx, chatID, userID, action.day)
			return
		}
		r.handleDayPicked(chatID, userID, action.day)

	case kindUser:
		r.handleDeleteUser(ctx, chatID, sess, action.nickname)

	case kindIgnore:
		// padding cell or malformed payload
	}
}

// handleDayPicked records the chosen day and asks for the note text. A second
// tap before the text arrives simply replaces the day.
func (r *Registry) handleDayPicked(chatID, userID int64, day int) {
	r.pending.Set(userID, day)
	r.send(chatID, fmt.Sprintf("Введите текст заметки для дня %d:", day))
}

// handleDaySearch runs the day-scoped search immediately; no pending state is
// written for the search calendar.
func (r *Registry) handleDaySearch(ctx context.Context, chatID, userID int64, day int) {
	results, err := r.svc.SearchByUserAndDay(ctx, userID, day)
	if err != nil {
		r.log.Error("day search failed", "userId", userID, "day", day, "err", err)
		r.send(chatID, "Не удалось выполнить поиск, попробуйте позже.")
		return
	}
	if len(results) == 0 {
		r.send(chatID, fmt.Sprintf("Заметки на день %d не найдены.", day))
		return
	}
	r.send(chatID, fmt.Sprintf("Заметки на день %d:\n%s", day, joinNotes(results)))
}

func (r *Registry) handleDeleteUser(ctx context.Context, chatID int64, sess *model.Session, target string) {
	if err := r.gate.Require(sess, model.RoleAdmin); err != nil {
		r.log.Info("attempt to have access to admin methods", "session", sess.Info())
		r.send(chatID, "You have not permissions for this command...")
		return
	}

	if err := r.svc.DeleteUser(ctx, target); err != nil {
		r.log.Error("delete user failed", "nickname", target, "err", err)
		r.send(chatID, fmt.Sprintf("Ошибка при удалении пользователя %s.", target))
		return
	}
	r.send(chatID, fmt.Sprintf("Пользователь %s успешно удален.", target))
}
