package model

import (
	"errors"
	"fmt"
)

// Role is the authorization level of a session. There is no hierarchy:
// operations require an exact role match.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var (
	// ErrPermissionDenied is returned when a session's role does not match
	// the role an operation requires.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound marks a remote entity that does not exist.
	ErrNotFound = errors.New("not found")
)

// Session is the per-user conversation identity. Role is assigned once at
// creation and never demoted.
type Session struct {
	UserID   int64
	Nickname string
	Role     Role
}

func (s *Session) Info() string {
	return fmt.Sprintf("%d\t---\t%s\t---\t%s", s.UserID, s.Nickname, s.Role)
}

// Notification is a note bound to a day of the month. Immutable after
// construction; ownership passes to the notification service.
type Notification struct {
	Text   string `json:"text"`
	Day    int    `json:"day"`
	UserID int64  `json:"userId"`
}

// UserRef identifies a user of the notification service. Used only for the
// admin deletion picker.
type UserRef struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}
