package consultation

import (
	"errors"
	"fmt"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	"github.com/vivafit/vivafit-api/internal/httperr"
)

var (
	// ErrInvalidActor is returned when the caller's role cannot perform the
	// operation at all, e.g. a professional booking as a client.
	ErrInvalidActor = httperr.ErrBusiness("invalid_actor")

	// ErrNotFound covers both a missing consultation and one the caller is not
	// a party to.
	ErrNotFound = httperr.ErrBusiness("consultation_not_found")

	ErrProfessionalNotFound = httperr.ErrBusiness("professional_not_found")
	ErrInvalidSchedule      = httperr.ErrBusiness("invalid_schedule")
)

type InvalidTransitionError struct {
	From Status
	To   Status
	Role account.Role
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s for role %s", e.From, e.To, e.Role)
}

// PersistenceError wraps a failure reported by the store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// WrapPersistence tags a store error with the failed operation. Domain errors
// pass through untouched.
func WrapPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func isDomainError(err error) bool {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return true
	}
	var te *InvalidTransitionError
	if errors.As(err, &te) {
		return true
	}
	var pe *PersistenceError
	return errors.As(err, &pe)
}
