package tracking

import (
	"context"
	"time"
)

type Repository interface {
	// ListExercises returns userID's exercises for day, newest first.
	ListExercises(ctx context.Context, userID string, day time.Time) ([]Exercise, error)

	// GetExercise returns ErrExerciseNotFound when the row is missing or
	// belongs to someone else.
	GetExercise(ctx context.Context, exerciseID, userID string) (*Exercise, error)

	CreateExercise(ctx context.Context, e *Exercise) error
	SetExerciseCompleted(ctx context.Context, exerciseID string, completed bool, updatedAt time.Time) error

	// GetProgress returns nil, nil when nothing is stored for the day.
	GetProgress(ctx context.Context, userID string, day time.Time) (*DailyProgress, error)
	UpsertProgress(ctx context.Context, p *DailyProgress) error
}
