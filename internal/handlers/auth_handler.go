package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vivafit/vivafit-api/internal/dto"
	"github.com/vivafit/vivafit-api/internal/httperr"
	"github.com/vivafit/vivafit-api/internal/identity"
	"github.com/vivafit/vivafit-api/internal/middleware"
)

type AuthHandler struct {
	auth *identity.Authenticator
}

func NewAuthHandler(auth *identity.Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	res, err := h.auth.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      res.Token,
		"expires_at": res.Session.ExpiresAt,
		"user":       dto.NewProfileDTO(res.Account),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
