package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	domain "github.com/vivafit/vivafit-api/internal/domain/consultation"
	"github.com/vivafit/vivafit-api/internal/dto"
	"github.com/vivafit/vivafit-api/internal/httperr"
	"github.com/vivafit/vivafit-api/internal/httpresp"
	"github.com/vivafit/vivafit-api/internal/middleware"
	ucConsultation "github.com/vivafit/vivafit-api/internal/usecase/consultation"
)

// ======================================================
// HANDLER
// ======================================================

type ConsultationHandler struct {
	list   *ucConsultation.ListConsultations
	get    *ucConsultation.GetConsultation
	book   *ucConsultation.BookConsultation
	update *ucConsultation.UpdateConsultationStatus
}

func NewConsultationHandler(
	list *ucConsultation.ListConsultations,
	get *ucConsultation.GetConsultation,
	book *ucConsultation.BookConsultation,
	update *ucConsultation.UpdateConsultationStatus,
) *ConsultationHandler {
	return &ConsultationHandler{
		list:   list,
		get:    get,
		book:   book,
		update: update,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookConsultationRequest struct {
	ProfessionalID  string `json:"professional_id" binding:"required"`
	Date            string `json:"date" binding:"required,isodate"`
	Time            string `json:"time" binding:"required,hhmm"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1,max=480"`
	Notes           string `json:"notes" binding:"max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// READ
// ======================================================

func (h *ConsultationHandler) List(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	list, err := h.list.Execute(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, dto.NewConsultationDTOs(list, actor))
}

func (h *ConsultationHandler) Get(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	found, err := h.get.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.NewConsultationDTO(*found, actor))
}

// ======================================================
// CREATE
// ======================================================

func (h *ConsultationHandler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req BookConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	snap, err := h.book.Execute(c.Request.Context(), actor, domain.BookingInput{
		ProfessionalID:  req.ProfessionalID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, writeResult(snap, actor))
}

// ======================================================
// STATUS
// ======================================================

func (h *ConsultationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.BadRequest(c, "invalid_status", "Unknown status.")
		return
	}

	h.changeStatus(c, status)
}

func (h *ConsultationHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, domain.StatusConfirmed)
}

func (h *ConsultationHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, domain.StatusCancelled)
}

func (h *ConsultationHandler) Complete(c *gin.Context) {
	h.changeStatus(c, domain.StatusCompleted)
}

func (h *ConsultationHandler) changeStatus(c *gin.Context, status domain.Status) {
	actor := middleware.CurrentActor(c)

	snap, err := h.update.Execute(c.Request.Context(), actor, c.Param("id"), status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, writeResult(snap, actor))
}

func writeResult(snap *ucConsultation.Snapshot, actor account.Actor) dto.WriteResultDTO {
	return dto.WriteResultDTO{
		Consultation:  dto.NewConsultationDTO(*snap.Changed, actor),
		Consultations: dto.NewConsultationDTOs(snap.Consultations, actor),
	}
}
