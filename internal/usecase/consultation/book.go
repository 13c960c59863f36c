package consultation

import (
	"context"

	"go.uber.org/zap"

	"github.com/vivafit/vivafit-api/internal/audit"
	"github.com/vivafit/vivafit-api/internal/domain/account"
	domain "github.com/vivafit/vivafit-api/internal/domain/consultation"
	"github.com/vivafit/vivafit-api/internal/timezone"
)

type BookConsultation struct {
	writeDeps
}

func NewBookConsultation(
	repo domain.Repository,
	list *ListConsultations,
	audit AuditDispatcher,
	clock *timezone.Clock,
	log *zap.Logger,
) *BookConsultation {
	return &BookConsultation{
		writeDeps: writeDeps{
			repo:  repo,
			list:  list,
			audit: audit,
			clock: clock,
			log:   log,
		},
	}
}

func (uc *BookConsultation) Execute(
	ctx context.Context,
	actor account.Actor,
	in domain.BookingInput,
) (*Snapshot, error) {

	// --------------------------------------------------
	// Role, schedule and defaults
	// --------------------------------------------------
	c, err := domain.NewConsultation(actor, in, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Professional must exist
	// --------------------------------------------------
	ok, err := uc.repo.IsProfessional(ctx, c.ProfessionalID)
	if err != nil {
		return nil, domain.WrapPersistence("check professional", err)
	}
	if !ok {
		return nil, domain.ErrProfessionalNotFound
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	if err := uc.repo.CreateConsultation(ctx, c); err != nil {
		uc.log.Error("create consultation failed",
			zap.String("client_id", actor.ID),
			zap.String("professional_id", c.ProfessionalID),
			zap.Error(err),
		)
		return nil, domain.WrapPersistence("create consultation", err)
	}

	if err := uc.repo.EnsureClientLink(ctx, c.ClientID, c.ProfessionalID); err != nil {
		uc.log.Warn("client link not recorded",
			zap.String("client_id", c.ClientID),
			zap.String("professional_id", c.ProfessionalID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actor.ID,
		Action:   "consultation_booked",
		Entity:   "consultation",
		EntityID: c.ID,
		Metadata: map[string]any{
			"professional_id":  c.ProfessionalID,
			"scheduled_date":   c.ScheduledDate.Format(domain.DateLayout),
			"scheduled_time":   c.ScheduledTime,
			"duration_minutes": c.DurationMinutes,
		},
	})

	return uc.relist(ctx, actor, c), nil
}
