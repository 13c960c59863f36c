package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vivafit/vivafit-api/internal/dto"
	"github.com/vivafit/vivafit-api/internal/httpresp"
	"github.com/vivafit/vivafit-api/internal/middleware"
	ucConsultation "github.com/vivafit/vivafit-api/internal/usecase/consultation"
)

type ClientHandler struct {
	listClients *ucConsultation.ListClients
}

func NewClientHandler(listClients *ucConsultation.ListClients) *ClientHandler {
	return &ClientHandler{listClients: listClients}
}

// ======================================================
// LIST CLIENTS (PROFESSIONAL)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	query := strings.TrimSpace(c.Query("query"))

	clients, err := h.listClients.Execute(c.Request.Context(), actor, query)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.PartyDTO, 0, len(clients))
	for _, a := range clients {
		out = append(out, dto.PartyDTO{ID: a.ID, Name: a.Name, Email: a.Email})
	}

	httpresp.List(c, out)
}
