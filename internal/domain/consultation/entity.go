package consultation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vivafit/vivafit-api/internal/domain/account"
)

const (
	DefaultDurationMinutes = 60

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Consultation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string           `gorm:"size:36;not null;index" json:"client_id"`
	Client   *account.Account `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	ProfessionalID string           `gorm:"size:36;not null;index" json:"professional_id"`
	Professional   *account.Account `gorm:"foreignKey:ProfessionalID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"professional,omitempty"`

	ScheduledDate   time.Time `gorm:"type:date;not null;index" json:"scheduled_date"`
	ScheduledTime   string    `gorm:"size:5;not null" json:"scheduled_time"`
	DurationMinutes int       `gorm:"not null;default:60" json:"duration_minutes"`

	Status Status  `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// HasParty reports whether actorID is the client or the professional.
func (c *Consultation) HasParty(actorID string) bool {
	return actorID != "" && (c.ClientID == actorID || c.ProfessionalID == actorID)
}

// ===============================
// Booking
// ===============================

type BookingInput struct {
	ProfessionalID  string
	Date            string
	Time            string
	DurationMinutes int
	Notes           string
}

// ParseDate reads a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// ParseTimeOfDay normalizes an HH:MM time of day.
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return t.Format(TimeLayout), nil
}

// NewConsultation builds a scheduled consultation for a client. Defaults are
// resolved here so stored rows are always complete.
func NewConsultation(actor account.Actor, in BookingInput, now time.Time) (*Consultation, error) {
	if !actor.IsClient() {
		return nil, ErrInvalidActor
	}
	if strings.TrimSpace(in.ProfessionalID) == "" {
		return nil, ErrProfessionalNotFound
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, ErrInvalidSchedule
	}
	tod, err := ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, ErrInvalidSchedule
	}

	duration := in.DurationMinutes
	if duration < 0 {
		return nil, ErrInvalidSchedule
	}
	if duration == 0 {
		duration = DefaultDurationMinutes
	}

	var notes *string
	if trimmed := strings.TrimSpace(in.Notes); trimmed != "" {
		notes = &trimmed
	}

	return &Consultation{
		ID:              uuid.NewString(),
		ClientID:        actor.ID,
		ProfessionalID:  strings.TrimSpace(in.ProfessionalID),
		ScheduledDate:   date,
		ScheduledTime:   tod,
		DurationMinutes: duration,
		Status:          InitialStatus(),
		Notes:           notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ===============================
// Domain Actions
// ===============================

// ApplyStatus moves c to requested on behalf of actor and bumps UpdatedAt.
// c is left untouched on error.
func ApplyStatus(c *Consultation, actor account.Actor, requested Status, now time.Time) error {
	if !c.HasParty(actor.ID) {
		return ErrNotFound
	}

	next, err := Transition(c.Status, requested, actor.Role)
	if err != nil {
		return err
	}

	c.Status = next
	c.UpdatedAt = now
	return nil
}
