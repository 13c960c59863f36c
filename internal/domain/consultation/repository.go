package consultation

import (
	"context"
	"time"
)

type Repository interface {
	// -------- Scoped reads --------

	// ListForParticipant returns every consultation where participantID is the
	// client or the professional, ordered by scheduled date then time.
	ListForParticipant(
		ctx context.Context,
		participantID string,
	) ([]Consultation, error)

	// GetForParticipant returns ErrNotFound when the row is missing or
	// participantID is not a party to it.
	GetForParticipant(
		ctx context.Context,
		consultationID string,
		participantID string,
	) (*Consultation, error)

	// -------- Writes --------

	CreateConsultation(
		ctx context.Context,
		c *Consultation,
	) error

	UpdateStatus(
		ctx context.Context,
		consultationID string,
		status Status,
		updatedAt time.Time,
	) error

	// -------- Counterparties --------

	IsProfessional(
		ctx context.Context,
		accountID string,
	) (bool, error)

	EnsureClientLink(
		ctx context.Context,
		clientID string,
		professionalID string,
	) error
}
