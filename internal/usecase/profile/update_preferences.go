package profile

import (
	"context"

	"github.com/vivafit/vivafit-api/internal/audit"
	"github.com/vivafit/vivafit-api/internal/domain/account"
)

type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

type UpdatePreferences struct {
	accounts account.Repository
	audit    AuditDispatcher
}

func NewUpdatePreferences(accounts account.Repository, audit AuditDispatcher) *UpdatePreferences {
	return &UpdatePreferences{
		accounts: accounts,
		audit:    audit,
	}
}

// Execute merges the update into the stored preferences and returns the
// refreshed profile.
func (uc *UpdatePreferences) Execute(
	ctx context.Context,
	actorID string,
	u account.PreferencesUpdate,
) (*account.Account, error) {

	acc, err := uc.accounts.GetAccountByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	prefs := acc.Preferences.Apply(u)
	if err := uc.accounts.UpdatePreferences(ctx, acc.ID, prefs); err != nil {
		return nil, err
	}
	acc.Preferences = prefs

	uc.audit.Dispatch(audit.Event{
		ActorID:  acc.ID,
		Action:   "preferences_updated",
		Entity:   "account",
		EntityID: acc.ID,
		Metadata: prefs,
	})

	return acc, nil
}
