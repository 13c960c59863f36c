package consultation

import (
	"context"

	"go.uber.org/zap"

	"github.com/vivafit/vivafit-api/internal/audit"
	"github.com/vivafit/vivafit-api/internal/domain/account"
	domain "github.com/vivafit/vivafit-api/internal/domain/consultation"
	"github.com/vivafit/vivafit-api/internal/timezone"
)

// Snapshot is the result of a write: the changed record and the actor's list
// as re-read after the write.
type Snapshot struct {
	Changed       *domain.Consultation
	Consultations []domain.Consultation
}

type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// writeDeps are shared by the use cases that mutate consultations.
type writeDeps struct {
	repo  domain.Repository
	list  *ListConsultations
	audit AuditDispatcher
	clock *timezone.Clock
	log   *zap.Logger
}

// relist reads the actor's list after a successful write and swaps in the
// re-read copy of the changed record. A failure here does
// not undo the write, so it is logged and the snapshot carries only the
// changed record.
func (d writeDeps) relist(ctx context.Context, actor account.Actor, changed *domain.Consultation) *Snapshot {
	snap := &Snapshot{Changed: changed}

	list, err := d.list.Execute(ctx, actor)
	if err != nil {
		d.log.Warn("re-list after write failed",
			zap.String("actor_id", actor.ID),
			zap.String("consultation_id", changed.ID),
			zap.Error(err),
		)
		return snap
	}

	snap.Consultations = list
	for i := range list {
		if list[i].ID == changed.ID {
			snap.Changed = &list[i]
			break
		}
	}
	return snap
}
