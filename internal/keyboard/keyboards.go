package keyboard

import (
	"github.com/sammyshhilt/tgbot-service/internal/calendar"
	"github.com/sammyshhilt/tgbot-service/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Calendar converts a rendered month grid into an inline keyboard, one button
// per cell, labels and tokens verbatim.
func Calendar(grid [][]calendar.Cell) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(grid))
	for _, week := range grid {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(week))
		for _, cell := range week {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(cell.Label, cell.Token))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// UserPicker builds the admin deletion picker: one row per user, nickname as
// the label and a namespaced token as the payload.
func UserPicker(users []model.UserRef) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(users))
	for _, u := range users {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(u.Nickname, "user:"+u.Nickname),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
