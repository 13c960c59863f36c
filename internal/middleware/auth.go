package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	"github.com/vivafit/vivafit-api/internal/httperr"
	"github.com/vivafit/vivafit-api/internal/identity"
)

const ContextAccount = "account"

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*account.Account, error)
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// AuthMiddleware answers 401 when the session is missing or expired and 500
// when the session store or account lookup fails.
func AuthMiddleware(resolver IdentityResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Missing or malformed bearer token.")
			return
		}

		acc, err := resolver.Resolve(c.Request.Context(), token)
		if errors.Is(err, identity.ErrNoSession) {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_session", "Session is missing or expired.")
			return
		}
		if err != nil {
			log.Error("resolve session failed", zap.Error(err))
			httperr.Abort(c, http.StatusInternalServerError, "persistence_error", "Could not reach the data store.")
			return
		}

		c.Set(ContextAccount, acc)

		c.Next()
	}
}

// CurrentAccount returns the account set by AuthMiddleware.
func CurrentAccount(c *gin.Context) *account.Account {
	return c.MustGet(ContextAccount).(*account.Account)
}

func CurrentActor(c *gin.Context) account.Actor {
	return CurrentAccount(c).Actor()
}

func actorID(c *gin.Context) string {
	v, ok := c.Get(ContextAccount)
	if !ok {
		return ""
	}
	if acc, ok := v.(*account.Account); ok && acc != nil {
		return acc.ID
	}
	return ""
}
