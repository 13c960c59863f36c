package models

import "time"

// ClientLink records that a client has booked with a professional.
type ClientLink struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ClientID       string `gorm:"size:36;not null;uniqueIndex:idx_client_professional" json:"client_id"`
	ProfessionalID string `gorm:"size:36;not null;uniqueIndex:idx_client_professional;index" json:"professional_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (ClientLink) TableName() string {
	return "client_professionals"
}
