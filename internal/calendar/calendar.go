package calendar

import (
	"fmt"
	"time"
)

// Mode selects the caption shown above the grid and the namespace of the day
// tokens, so a tap identifies its own calendar without any caption matching.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeSearch Mode = "search"
)

// IgnoreToken is the reserved callback payload of padding cells. It must be
// filtered out before any nickname parsing, since nicknames are otherwise
// unconstrained strings.
const IgnoreToken = "ignore"

// Cell is one button of the rendered grid. Token is IgnoreToken for padding
// cells and a namespaced day token otherwise.
type Cell struct {
	Label string
	Token string
}

// DayToken builds the callback payload for a day button: "day:<mode>:<n>".
func DayToken(mode Mode, day int) string {
	return fmt.Sprintf("day:%s:%d", mode, day)
}

// Caption returns the prompt shown above the grid for the given mode.
func Caption(mode Mode) string {
	if mode == ModeSearch {
		return "Выберите дату для поиска заметок:"
	}
	return "Выберите дату для создания заметки:"
}

// Render lays out the month of ref as rows of exactly 7 cells, week starting
// on Sunday. Days before ref's day are prefixed with ◀, ref's day is marked
// with 🔵, later days are bare numbers. Tokens always carry the bare day
// number regardless of label.
func Render(ref time.Time, mode Mode) [][]Cell {
	today := ref.Day()
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	var rows [][]Cell
	week := make([]Cell, 0, 7)

	for i := 0; i < offset; i++ {
		week = append(week, Cell{Label: " ", Token: IgnoreToken})
	}

	for day := 1; day <= daysInMonth; day++ {
		var label string
		switch {
		case day < today:
			label = fmt.Sprintf("◀ %d", day)
		case day == today:
			label = fmt.Sprintf("🔵 %d", day)
		default:
			label = fmt.Sprintf("%d", day)
		}
		week = append(week, Cell{Label: label, Token: DayToken(mode, day)})

		if len(week) == 7 {
			rows = append(rows, week)
			week = make([]Cell, 0, 7)
		}
	}

	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, Cell{Label: " ", Token: IgnoreToken})
		}
		rows = append(rows, week)
	}

	return rows
}
