package dto

import (
	"time"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	"github.com/vivafit/vivafit-api/internal/domain/consultation"
)

type PartyDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ConsultationDTO struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	ProfessionalID  string    `json:"professional_id"`
	ScheduledDate   string    `json:"scheduled_date"`
	ScheduledTime   string    `json:"scheduled_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Client       *PartyDTO `json:"client,omitempty"`
	Professional *PartyDTO `json:"professional,omitempty"`

	// Actions are the statuses the viewing actor may move this consultation to.
	Actions []string `json:"actions"`
}

// WriteResultDTO is returned by booking and status changes.
type WriteResultDTO struct {
	Consultation  ConsultationDTO   `json:"consultation"`
	Consultations []ConsultationDTO `json:"consultations"`
}

func party(a *account.Account) *PartyDTO {
	if a == nil || a.ID == "" {
		return nil
	}
	return &PartyDTO{ID: a.ID, Name: a.Name, Email: a.Email}
}

func actions(c *consultation.Consultation, viewer account.Actor) []string {
	out := []string{}
	if !c.HasParty(viewer.ID) {
		return out
	}
	for _, s := range consultation.NextStatuses(c.Status, viewer.Role) {
		out = append(out, s.String())
	}
	return out
}

// NewConsultationDTO renders c as seen by viewer.
func NewConsultationDTO(c consultation.Consultation, viewer account.Actor) ConsultationDTO {
	return ConsultationDTO{
		ID:              c.ID,
		ClientID:        c.ClientID,
		ProfessionalID:  c.ProfessionalID,
		ScheduledDate:   c.ScheduledDate.Format(consultation.DateLayout),
		ScheduledTime:   c.ScheduledTime,
		DurationMinutes: c.DurationMinutes,
		Status:          c.Status.String(),
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Client:          party(c.Client),
		Professional:    party(c.Professional),
		Actions:         actions(&c, viewer),
	}
}

func NewConsultationDTOs(list []consultation.Consultation, viewer account.Actor) []ConsultationDTO {
	out := make([]ConsultationDTO, 0, len(list))
	for _, c := range list {
		out = append(out, NewConsultationDTO(c, viewer))
	}
	return out
}

type ProfileDTO struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Role        string              `json:"role"`
	Preferences account.Preferences `json:"preferences"`
}

func NewProfileDTO(a *account.Account) ProfileDTO {
	return ProfileDTO{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Role:        a.Role.String(),
		Preferences: a.Preferences,
	}
}
