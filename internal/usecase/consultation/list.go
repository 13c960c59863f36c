package consultation

import (
	"context"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	domain "github.com/vivafit/vivafit-api/internal/domain/consultation"
)

type ListConsultations struct {
	repo domain.Repository
}

func NewListConsultations(repo domain.Repository) *ListConsultations {
	return &ListConsultations{repo: repo}
}

// Execute returns every consultation the actor is a party to, in
// chronological order.
func (uc *ListConsultations) Execute(
	ctx context.Context,
	actor account.Actor,
) ([]domain.Consultation, error) {

	out, err := uc.repo.ListForParticipant(ctx, actor.ID)
	if err != nil {
		return nil, domain.WrapPersistence("list consultations", err)
	}
	if out == nil {
		out = []domain.Consultation{}
	}

	return out, nil
}
