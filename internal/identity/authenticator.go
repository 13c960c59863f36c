package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vivafit/vivafit-api/internal/domain/account"
)

type Authenticator struct {
	accounts account.Repository
	sessions SessionStore
	tokens   *TokenIssuer
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthenticator(
	accounts account.Repository,
	sessions SessionStore,
	tokens *TokenIssuer,
	ttl time.Duration,
) *Authenticator {
	return &Authenticator{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		now:      time.Now,
	}
}

type LoginResult struct {
	Token   string
	Session Session
	Account *account.Account
}

func (a *Authenticator) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	acc, err := a.accounts.GetAccountByEmail(ctx, email)
	if errors.Is(err, account.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if acc.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s := Session{
		ID:        uuid.NewString(),
		AccountID: acc.ID,
		Email:     acc.Email,
		ExpiresAt: a.now().Add(a.ttl),
	}

	if err := a.sessions.Save(ctx, s); err != nil {
		return nil, err
	}

	token, err := a.tokens.Issue(s)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{
		Token:   token,
		Session: s,
		Account: acc,
	}, nil
}

// Logout revokes the session behind the token. Unknown or expired tokens
// are not an error.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	s, err := a.tokens.Parse(token)
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}
	return a.sessions.Delete(ctx, s.ID)
}
