package session

import (
	"sync"

	"github.com/sammyshhilt/tgbot-service/internal/model"
)

// Store keeps one Session per Telegram user for the lifetime of the process.
// All durable state lives in the notification service; this is identity only.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*model.Session
	admins   map[string]struct{}
}

// NewStore builds a store whose admin allowlist is fixed for the process
// lifetime. A user whose nickname is on the list is created as ADMIN.
func NewStore(admins []string) *Store {
	set := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		set[a] = struct{}{}
	}
	return &Store{
		sessions: make(map[int64]*model.Session),
		admins:   set,
	}
}

// GetOrCreate returns the existing session for userID or creates one. Role is
// derived from the allowlist at creation only. Concurrent callers for the same
// userID observe the same session.
func (s *Store) GetOrCreate(userID int64, nickname string) *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[userID]; ok {
		return existing
	}

	role := model.RoleUser
	if _, ok := s.admins[nickname]; ok {
		role = model.RoleAdmin
	}
	created := &model.Session{UserID: userID, Nickname: nickname, Role: role}
	s.sessions[userID] = created
	return created
}

func (s *Store) Get(userID int64) (*model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}
