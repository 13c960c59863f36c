package identity

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/vivafit/vivafit-api/internal/domain/account"
)

// Resolver turns a bearer token into the calling account. It only reads.
type Resolver struct {
	tokens   *TokenIssuer
	sessions SessionStore
	accounts account.Repository
	log      *zap.Logger
	now      func() time.Time
}

func NewResolver(
	tokens *TokenIssuer,
	sessions SessionStore,
	accounts account.Repository,
	log *zap.Logger,
) *Resolver {
	return &Resolver{
		tokens:   tokens,
		sessions: sessions,
		accounts: accounts,
		log:      log,
		now:      time.Now,
	}
}

// CurrentSession verifies the token and checks the session is still live.
func (r *Resolver) CurrentSession(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNoSession
	}

	claimed, err := r.tokens.Parse(token)
	if err != nil {
		return Session{}, err
	}

	live, err := r.sessions.Get(ctx, claimed.ID)
	if err != nil {
		return Session{}, err
	}
	if live.AccountID != claimed.AccountID || live.Expired(r.now()) {
		return Session{}, ErrNoSession
	}

	return live, nil
}

// Resolve returns the profile behind the token. When the session is valid but
// the account row is gone, a minimal client identity is synthesized from the
// session instead of failing.
func (r *Resolver) Resolve(ctx context.Context, token string) (*account.Account, error) {
	s, err := r.CurrentSession(ctx, token)
	if err != nil {
		return nil, err
	}

	a, err := r.accounts.GetAccountByID(ctx, s.AccountID)
	if errors.Is(err, account.ErrNotFound) {
		r.log.Warn("account missing for live session, using fallback identity",
			zap.String("account_id", s.AccountID),
			zap.String("session_id", s.ID),
		)
		fallback := account.FallbackAccount(s.AccountID, s.Email)
		return &fallback, nil
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}
