package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vivafit/vivafit-api/internal/domain/tracking"
)

type TrackingGormRepository struct {
	db *gorm.DB
}

func NewTrackingGormRepository(db *gorm.DB) *TrackingGormRepository {
	return &TrackingGormRepository{db: db}
}

// --------------------------------------------------
// Exercises
// --------------------------------------------------

func (r *TrackingGormRepository) ListExercises(
	ctx context.Context,
	userID string,
	day time.Time,
) ([]tracking.Exercise, error) {

	var out []tracking.Exercise
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, tracking.Day(day)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TrackingGormRepository) GetExercise(
	ctx context.Context,
	exerciseID string,
	userID string,
) (*tracking.Exercise, error) {

	var e tracking.Exercise
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", exerciseID, userID).
		First(&e).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tracking.ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *TrackingGormRepository) CreateExercise(ctx context.Context, e *tracking.Exercise) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *TrackingGormRepository) SetExerciseCompleted(
	ctx context.Context,
	exerciseID string,
	completed bool,
	updatedAt time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&tracking.Exercise{}).
		Where("id = ?", exerciseID).
		Updates(map[string]any{
			"completed":  completed,
			"updated_at": updatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return tracking.ErrExerciseNotFound
	}
	return nil
}

// --------------------------------------------------
// Daily progress
// --------------------------------------------------

func (r *TrackingGormRepository) GetProgress(
	ctx context.Context,
	userID string,
	day time.Time,
) (*tracking.DailyProgress, error) {

	var p tracking.DailyProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, tracking.Day(day)).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TrackingGormRepository) UpsertProgress(ctx context.Context, p *tracking.DailyProgress) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"workout", "nutrition", "hydration", "sleep", "notes", "updated_at",
			}),
		}).
		Create(p).Error
}

// Compile-time check
var _ tracking.Repository = (*TrackingGormRepository)(nil)
