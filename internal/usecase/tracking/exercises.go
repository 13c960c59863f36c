package tracking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vivafit/vivafit-api/internal/audit"
	"github.com/vivafit/vivafit-api/internal/domain/consultation"
	domain "github.com/vivafit/vivafit-api/internal/domain/tracking"
	"github.com/vivafit/vivafit-api/internal/timezone"
)

type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// LIST
// ======================================================

type ListExercises struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListExercises(repo domain.Repository, clock *timezone.Clock) *ListExercises {
	return &ListExercises{repo: repo, clock: clock}
}

// Execute lists the user's exercises for day, newest first. A zero day means
// today in the application timezone.
func (uc *ListExercises) Execute(
	ctx context.Context,
	userID string,
	day time.Time,
) ([]domain.Exercise, error) {

	if day.IsZero() {
		day = uc.clock.Now()
	}

	list, err := uc.repo.ListExercises(ctx, userID, domain.Day(day))
	if err != nil {
		return nil, consultation.WrapPersistence("list exercises", err)
	}
	if list == nil {
		list = []domain.Exercise{}
	}
	return list, nil
}

// ======================================================
// ADD
// ======================================================

type AddExercise struct {
	repo  domain.Repository
	audit AuditDispatcher
	clock *timezone.Clock
	log   *zap.Logger
}

func NewAddExercise(
	repo domain.Repository,
	audit AuditDispatcher,
	clock *timezone.Clock,
	log *zap.Logger,
) *AddExercise {
	return &AddExercise{repo: repo, audit: audit, clock: clock, log: log}
}

func (uc *AddExercise) Execute(
	ctx context.Context,
	userID string,
	in domain.ExerciseInput,
) (*domain.Exercise, error) {

	e, err := domain.NewExercise(userID, in, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateExercise(ctx, e); err != nil {
		uc.log.Error("create exercise failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, consultation.WrapPersistence("create exercise", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  userID,
		Action:   "exercise_added",
		Entity:   "exercise",
		EntityID: e.ID,
		Metadata: map[string]any{
			"name":             e.Name,
			"duration_minutes": e.DurationMinutes,
			"date":             e.Date.Format(domain.DateLayout),
		},
	})

	return e, nil
}

// ======================================================
// COMPLETE
// ======================================================

type CompleteExercise struct {
	repo  domain.Repository
	audit AuditDispatcher
	clock *timezone.Clock
}

func NewCompleteExercise(
	repo domain.Repository,
	audit AuditDispatcher,
	clock *timezone.Clock,
) *CompleteExercise {
	return &CompleteExercise{repo: repo, audit: audit, clock: clock}
}

// Execute sets the completed flag. A nil completed flips the stored value.
func (uc *CompleteExercise) Execute(
	ctx context.Context,
	userID string,
	exerciseID string,
	completed *bool,
) (*domain.Exercise, error) {

	e, err := uc.repo.GetExercise(ctx, exerciseID, userID)
	if err != nil {
		return nil, consultation.WrapPersistence("get exercise", err)
	}

	next := !e.Completed
	if completed != nil {
		next = *completed
	}

	now := uc.clock.Now()
	if err := uc.repo.SetExerciseCompleted(ctx, e.ID, next, now); err != nil {
		return nil, consultation.WrapPersistence("complete exercise", err)
	}
	e.Completed = next
	e.UpdatedAt = now

	uc.audit.Dispatch(audit.Event{
		ActorID:  userID,
		Action:   "exercise_completed",
		Entity:   "exercise",
		EntityID: e.ID,
		Metadata: map[string]any{"completed": next},
	})

	return e, nil
}
