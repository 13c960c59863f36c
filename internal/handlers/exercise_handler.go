package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/vivafit/vivafit-api/internal/domain/tracking"
	"github.com/vivafit/vivafit-api/internal/httperr"
	"github.com/vivafit/vivafit-api/internal/httpresp"
	"github.com/vivafit/vivafit-api/internal/middleware"
	ucTracking "github.com/vivafit/vivafit-api/internal/usecase/tracking"
)

// ======================================================
// HANDLER
// ======================================================

type TrackingHandler struct {
	listExercises    *ucTracking.ListExercises
	addExercise      *ucTracking.AddExercise
	completeExercise *ucTracking.CompleteExercise
	getProgress      *ucTracking.GetProgress
	updateProgress   *ucTracking.UpdateProgress
}

func NewTrackingHandler(
	listExercises *ucTracking.ListExercises,
	addExercise *ucTracking.AddExercise,
	completeExercise *ucTracking.CompleteExercise,
	getProgress *ucTracking.GetProgress,
	updateProgress *ucTracking.UpdateProgress,
) *TrackingHandler {
	return &TrackingHandler{
		listExercises:    listExercises,
		addExercise:      addExercise,
		completeExercise: completeExercise,
		getProgress:      getProgress,
		updateProgress:   updateProgress,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddExerciseRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	Description     string `json:"description" binding:"max=2000"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1,max=600"`
}

type CompleteExerciseRequest struct {
	Completed *bool `json:"completed"`
}

type UpdateProgressRequest struct {
	Workout   int    `json:"workout" binding:"min=0,max=100"`
	Nutrition int    `json:"nutrition" binding:"min=0,max=100"`
	Hydration int    `json:"hydration" binding:"min=0,max=100"`
	Sleep     int    `json:"sleep" binding:"min=0,max=100"`
	Notes     string `json:"notes" binding:"max=2000"`
}

// queryDay reads the optional ?date=YYYY-MM-DD filter. ok is false when the
// handler already answered 400.
func queryDay(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, true
	}
	day, err := domain.ParseDay(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return time.Time{}, false
	}
	return day, true
}

// ======================================================
// EXERCISES
// ======================================================

func (h *TrackingHandler) ListExercises(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}

	list, err := h.listExercises.Execute(c.Request.Context(), middleware.CurrentAccount(c).ID, day)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *TrackingHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	e, err := h.addExercise.Execute(c.Request.Context(), middleware.CurrentAccount(c).ID, domain.ExerciseInput{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

// CompleteExercise flips the flag, or sets it when the body carries
// {"completed": bool}.
func (h *TrackingHandler) CompleteExercise(c *gin.Context) {
	var req CompleteExerciseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", err.Error())
			return
		}
	}

	e, err := h.completeExercise.Execute(
		c.Request.Context(),
		middleware.CurrentAccount(c).ID,
		c.Param("id"),
		req.Completed,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, e)
}

// ======================================================
// PROGRESS
// ======================================================

func (h *TrackingHandler) GetProgress(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}

	p, err := h.getProgress.Execute(c.Request.Context(), middleware.CurrentAccount(c).ID, day)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *TrackingHandler) UpdateProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	p, err := h.updateProgress.Execute(c.Request.Context(), middleware.CurrentAccount(c).ID, domain.ProgressInput{
		Workout:   req.Workout,
		Nutrition: req.Nutrition,
		Hydration: req.Hydration,
		Sleep:     req.Sleep,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, p)
}
