package identity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoSession          = errors.New("no session")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Session is what the identity collaborator knows about a signed-in caller.
type Session struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionStore keeps live sessions so they can be revoked before their token
// expires. Get returns ErrNoSession for unknown or expired sessions.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (Session, error)
	Delete(ctx context.Context, sessionID string) error
}
