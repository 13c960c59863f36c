package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	"github.com/vivafit/vivafit-api/internal/domain/consultation"
	"github.com/vivafit/vivafit-api/internal/domain/tracking"
	"github.com/vivafit/vivafit-api/internal/httperr"
	"github.com/vivafit/vivafit-api/internal/identity"
)

// writeError maps a use-case error onto the HTTP error body.
func writeError(c *gin.Context, err error) {
	var te *consultation.InvalidTransitionError
	var pe *consultation.PersistenceError

	switch {
	case errors.Is(err, consultation.ErrInvalidActor):
		httperr.Forbidden(c, "invalid_actor", "Your role cannot perform this operation.")

	case errors.As(err, &te):
		httperr.Conflict(c, "invalid_transition",
			fmt.Sprintf("Cannot change status from %s to %s.", te.From, te.To))

	case errors.Is(err, consultation.ErrNotFound):
		httperr.NotFound(c, "consultation_not_found", "Consultation not found.")

	case errors.Is(err, consultation.ErrProfessionalNotFound):
		httperr.NotFound(c, "professional_not_found", "Professional not found.")

	case errors.Is(err, consultation.ErrInvalidSchedule):
		httperr.BadRequest(c, "invalid_schedule", "Invalid date, time or duration.")

	case errors.Is(err, tracking.ErrExerciseNotFound):
		httperr.NotFound(c, "exercise_not_found", "Exercise not found.")

	case errors.Is(err, tracking.ErrInvalidExercise):
		httperr.BadRequest(c, "invalid_exercise", "Name is required and duration must be between 1 and 600 minutes.")

	case errors.Is(err, tracking.ErrInvalidProgress):
		httperr.BadRequest(c, "invalid_progress", "Progress values must be between 0 and 100.")

	case errors.Is(err, account.ErrNotFound):
		httperr.NotFound(c, "account_not_found", "Account not found.")

	case errors.Is(err, identity.ErrInvalidCredentials):
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")

	case errors.Is(err, identity.ErrNoSession):
		httperr.Unauthorized(c, "invalid_session", "Session is missing or expired.")

	case errors.As(err, &pe):
		httperr.Internal(c, "persistence_error", "Could not reach the data store.")

	default:
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Request rejected.")
			break
		}
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}

	_ = c.Error(err)
}
