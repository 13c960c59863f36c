package consultation

import (
	"context"

	"go.uber.org/zap"

	"github.com/vivafit/vivafit-api/internal/audit"
	"github.com/vivafit/vivafit-api/internal/domain/account"
	domain "github.com/vivafit/vivafit-api/internal/domain/consultation"
	"github.com/vivafit/vivafit-api/internal/timezone"
)

type UpdateConsultationStatus struct {
	writeDeps
}

func NewUpdateConsultationStatus(
	repo domain.Repository,
	list *ListConsultations,
	audit AuditDispatcher,
	clock *timezone.Clock,
	log *zap.Logger,
) *UpdateConsultationStatus {
	return &UpdateConsultationStatus{
		writeDeps: writeDeps{
			repo:  repo,
			list:  list,
			audit: audit,
			clock: clock,
			log:   log,
		},
	}
}

// Execute validates the transition against the stored status and the actor's
// role before writing. Nothing is written when validation fails.
func (uc *UpdateConsultationStatus) Execute(
	ctx context.Context,
	actor account.Actor,
	consultationID string,
	requested domain.Status,
) (*Snapshot, error) {

	current, err := uc.repo.GetForParticipant(ctx, consultationID, actor.ID)
	if err != nil {
		return nil, domain.WrapPersistence("get consultation", err)
	}

	from := current.Status
	now := uc.clock.Now()

	updated := *current
	if err := domain.ApplyStatus(&updated, actor, requested, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, updated.ID, updated.Status, updated.UpdatedAt); err != nil {
		uc.log.Error("update consultation status failed",
			zap.String("consultation_id", updated.ID),
			zap.String("actor_id", actor.ID),
			zap.String("status", updated.Status.String()),
			zap.Error(err),
		)
		return nil, domain.WrapPersistence("update consultation status", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "consultation_" + updated.Status.String(),
		Entity:   "consultation",
		EntityID: updated.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   updated.Status,
			"role": actor.Role,
		},
	})

	return uc.relist(ctx, actor, &updated), nil
}
