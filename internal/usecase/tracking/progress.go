package tracking

import (
	"context"
	"time"

	"github.com/vivafit/vivafit-api/internal/audit"
	"github.com/vivafit/vivafit-api/internal/domain/consultation"
	domain "github.com/vivafit/vivafit-api/internal/domain/tracking"
	"github.com/vivafit/vivafit-api/internal/timezone"
)

type GetProgress struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewGetProgress(repo domain.Repository, clock *timezone.Clock) *GetProgress {
	return &GetProgress{repo: repo, clock: clock}
}

// Execute reads the user's progress for day (today when zero). A day with
// nothing stored reads as all zeros.
func (uc *GetProgress) Execute(
	ctx context.Context,
	userID string,
	day time.Time,
) (domain.DailyProgress, error) {

	if day.IsZero() {
		day = uc.clock.Now()
	}

	p, err := uc.repo.GetProgress(ctx, userID, domain.Day(day))
	if err != nil {
		return domain.DailyProgress{}, consultation.WrapPersistence("get progress", err)
	}
	if p == nil {
		return domain.EmptyProgress(userID, day), nil
	}
	return *p, nil
}

type UpdateProgress struct {
	repo  domain.Repository
	audit AuditDispatcher
	clock *timezone.Clock
}

func NewUpdateProgress(repo domain.Repository, audit AuditDispatcher, clock *timezone.Clock) *UpdateProgress {
	return &UpdateProgress{repo: repo, audit: audit, clock: clock}
}

// Execute replaces today's progress for the user.
func (uc *UpdateProgress) Execute(
	ctx context.Context,
	userID string,
	in domain.ProgressInput,
) (*domain.DailyProgress, error) {

	now := uc.clock.Now()
	p, err := domain.NewProgress(userID, now, in, now)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpsertProgress(ctx, p); err != nil {
		return nil, consultation.WrapPersistence("save progress", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  userID,
		Action:   "progress_updated",
		Entity:   "user_progress",
		EntityID: userID,
		Metadata: map[string]any{
			"date":      p.Date.Format(domain.DateLayout),
			"workout":   p.Workout,
			"nutrition": p.Nutrition,
			"hydration": p.Hydration,
			"sleep":     p.Sleep,
		},
	})

	return p, nil
}
