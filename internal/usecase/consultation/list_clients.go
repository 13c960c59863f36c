package consultation

import (
	"context"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	domain "github.com/vivafit/vivafit-api/internal/domain/consultation"
)

// ListClients returns the clients who have booked with a professional.
type ListClients struct {
	accounts account.Repository
}

func NewListClients(accounts account.Repository) *ListClients {
	return &ListClients{accounts: accounts}
}

func (uc *ListClients) Execute(
	ctx context.Context,
	actor account.Actor,
	query string,
) ([]account.Account, error) {

	if !actor.IsProfessional() {
		return nil, domain.ErrInvalidActor
	}

	clients, err := uc.accounts.ListLinkedClients(ctx, actor.ID, query)
	if err != nil {
		return nil, domain.WrapPersistence("list clients", err)
	}
	if clients == nil {
		clients = []account.Account{}
	}

	return clients, nil
}
