package tracking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vivafit/vivafit-api/internal/httperr"
)

const (
	DefaultExerciseMinutes = 30
	MaxExerciseMinutes     = 600

	DateLayout = "2006-01-02"
)

var (
	ErrExerciseNotFound = httperr.ErrBusiness("exercise_not_found")
	ErrInvalidExercise  = httperr.ErrBusiness("invalid_exercise")
	ErrInvalidProgress  = httperr.ErrBusiness("invalid_progress")
)

// Exercise is one entry on a user's daily workout list.
type Exercise struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;not null;index:idx_exercise_user_date" json:"user_id"`

	Name            string    `gorm:"size:120;not null" json:"name"`
	Description     *string   `gorm:"type:text" json:"description"`
	DurationMinutes int       `gorm:"not null;default:30" json:"duration_minutes"`
	Completed       bool      `gorm:"not null;default:false" json:"completed"`
	Date            time.Time `gorm:"type:date;not null;index:idx_exercise_user_date" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Exercise) TableName() string {
	return "exercises"
}

type ExerciseInput struct {
	Name            string
	Description     string
	DurationMinutes int
}

// Day truncates t to its calendar date, stored as UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay reads a YYYY-MM-DD date.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// NewExercise builds a pending exercise for userID on the day of now.
func NewExercise(userID string, in ExerciseInput, now time.Time) (*Exercise, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidExercise
	}

	duration := in.DurationMinutes
	if duration < 0 || duration > MaxExerciseMinutes {
		return nil, ErrInvalidExercise
	}
	if duration == 0 {
		duration = DefaultExerciseMinutes
	}

	var desc *string
	if trimmed := strings.TrimSpace(in.Description); trimmed != "" {
		desc = &trimmed
	}

	return &Exercise{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            name,
		Description:     desc,
		DurationMinutes: duration,
		Completed:       false,
		Date:            Day(now),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
