package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	"github.com/vivafit/vivafit-api/internal/dto"
	"github.com/vivafit/vivafit-api/internal/httperr"
	"github.com/vivafit/vivafit-api/internal/httpresp"
	"github.com/vivafit/vivafit-api/internal/middleware"
	ucProfile "github.com/vivafit/vivafit-api/internal/usecase/profile"
)

type MeHandler struct {
	updatePreferences *ucProfile.UpdatePreferences
}

func NewMeHandler(updatePreferences *ucProfile.UpdatePreferences) *MeHandler {
	return &MeHandler{updatePreferences: updatePreferences}
}

type UpdatePreferencesRequest struct {
	Theme        *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	FontSize     *string `json:"font_size" binding:"omitempty,oneof=small medium large"`
	HighContrast *bool   `json:"high_contrast"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	httpresp.OK(c, dto.NewProfileDTO(middleware.CurrentAccount(c)))
}

func (h *MeHandler) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	u := account.PreferencesUpdate{HighContrast: req.HighContrast}
	if req.Theme != nil {
		theme := account.Theme(*req.Theme)
		u.Theme = &theme
	}
	if req.FontSize != nil {
		size := account.FontSize(*req.FontSize)
		u.FontSize = &size
	}

	acc, err := h.updatePreferences.Execute(c.Request.Context(), middleware.CurrentAccount(c).ID, u)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.NewProfileDTO(acc))
}
