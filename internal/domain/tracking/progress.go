package tracking

import (
	"strings"
	"time"
)

// DailyProgress holds the dashboard percentages for one user and day.
type DailyProgress struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	UserID string    `gorm:"size:36;not null;uniqueIndex:idx_progress_user_date" json:"user_id"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_progress_user_date" json:"date"`

	Workout   int `gorm:"not null;default:0" json:"workout"`
	Nutrition int `gorm:"not null;default:0" json:"nutrition"`
	Hydration int `gorm:"not null;default:0" json:"hydration"`
	Sleep     int `gorm:"not null;default:0" json:"sleep"`

	Notes *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailyProgress) TableName() string {
	return "user_progress"
}

// EmptyProgress is what a day with no stored row reads as.
func EmptyProgress(userID string, day time.Time) DailyProgress {
	return DailyProgress{UserID: userID, Date: Day(day)}
}

type ProgressInput struct {
	Workout   int
	Nutrition int
	Hydration int
	Sleep     int
	Notes     string
}

func percent(v int) bool {
	return v >= 0 && v <= 100
}

// NewProgress validates the percentages and builds the row for userID and day.
func NewProgress(userID string, day time.Time, in ProgressInput, now time.Time) (*DailyProgress, error) {
	if !percent(in.Workout) || !percent(in.Nutrition) || !percent(in.Hydration) || !percent(in.Sleep) {
		return nil, ErrInvalidProgress
	}

	var notes *string
	if trimmed := strings.TrimSpace(in.Notes); trimmed != "" {
		notes = &trimmed
	}

	return &DailyProgress{
		UserID:    userID,
		Date:      Day(day),
		Workout:   in.Workout,
		Nutrition: in.Nutrition,
		Hydration: in.Hydration,
		Sleep:     in.Sleep,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
