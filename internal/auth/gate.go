package auth

import (
	"github.com/sammyshhilt/tgbot-service/internal/model"
)

// Gate guards admin-only operations. The check is an exact role match, not
// "at least": a role above ADMIN would still be denied.
type Gate struct{}

func NewGate() *Gate {
	return &Gate{}
}

// Require returns model.ErrPermissionDenied unless the session exists and its
// role equals required. Callers render a user-visible denial message; the
// error never propagates past the handler.
func (g *Gate) Require(s *model.Session, required model.Role) error {
	if s == nil || s.Role != required {
		return model.ErrPermissionDenied
	}
	return nil
}
