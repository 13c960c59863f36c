package consultation

import (
	"context"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	domain "github.com/vivafit/vivafit-api/internal/domain/consultation"
)

type GetConsultation struct {
	repo domain.Repository
}

func NewGetConsultation(repo domain.Repository) *GetConsultation {
	return &GetConsultation{repo: repo}
}

func (uc *GetConsultation) Execute(
	ctx context.Context,
	actor account.Actor,
	consultationID string,
) (*domain.Consultation, error) {

	c, err := uc.repo.GetForParticipant(ctx, consultationID, actor.ID)
	if err != nil {
		return nil, domain.WrapPersistence("get consultation", err)
	}

	return c, nil
}
