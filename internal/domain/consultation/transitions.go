package consultation

import "github.com/vivafit/vivafit-api/internal/domain/account"

type edge struct {
	from Status
	to   Status
}

var (
	bothRoles        = []account.Role{account.RoleClient, account.RoleProfessional}
	professionalOnly = []account.Role{account.RoleProfessional}
)

// transitionMap lists every legal edge and the roles allowed to take it.
// Terminal statuses have no outgoing edges.
var transitionMap = map[edge][]account.Role{
	{StatusScheduled, StatusConfirmed}: professionalOnly,
	{StatusScheduled, StatusCancelled}: bothRoles,
	{StatusConfirmed, StatusCompleted}: professionalOnly,
	{StatusConfirmed, StatusCancelled}: bothRoles,
}

// Transition validates moving a consultation from current to requested on
// behalf of role. It returns the new status or an *InvalidTransitionError.
func Transition(current, requested Status, role account.Role) (Status, error) {
	allowed, ok := transitionMap[edge{current, requested}]
	if !ok {
		return current, &InvalidTransitionError{From: current, To: requested, Role: role}
	}
	for _, r := range allowed {
		if r == role {
			return requested, nil
		}
	}
	return current, &InvalidTransitionError{From: current, To: requested, Role: role}
}

// canTransition is Transition without the error value.
func canTransition(current, requested Status, role account.Role) bool {
	_, err := Transition(current, requested, role)
	return err == nil
}

// NextStatuses lists what role may move a consultation in current to.
func NextStatuses(current Status, role account.Role) []Status {
	var out []Status
	for _, to := range AllStatuses {
		if canTransition(current, to, role) {
			out = append(out, to)
		}
	}
	return out
}
