package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vivafit/vivafit-api/internal/domain/account"
	domain "github.com/vivafit/vivafit-api/internal/domain/consultation"
	"github.com/vivafit/vivafit-api/internal/models"
)

type ConsultationGormRepository struct {
	db *gorm.DB
}

func NewConsultationGormRepository(db *gorm.DB) *ConsultationGormRepository {
	return &ConsultationGormRepository{db: db}
}

// counterparty loads only what list views display.
func counterparty(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "role")
}

// --------------------------------------------------
// Scoped reads
// --------------------------------------------------

func (r *ConsultationGormRepository) ListForParticipant(
	ctx context.Context,
	participantID string,
) ([]domain.Consultation, error) {

	var out []domain.Consultation
	err := r.db.WithContext(ctx).
		Preload("Client", counterparty).
		Preload("Professional", counterparty).
		Where("(client_id = ? OR professional_id = ?)", participantID, participantID).
		Order("scheduled_date ASC").
		Order("scheduled_time ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&out).Error

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ConsultationGormRepository) GetForParticipant(
	ctx context.Context,
	consultationID string,
	participantID string,
) (*domain.Consultation, error) {

	var c domain.Consultation
	err := r.db.WithContext(ctx).
		Preload("Client", counterparty).
		Preload("Professional", counterparty).
		Where(
			"id = ? AND (client_id = ? OR professional_id = ?)",
			consultationID, participantID, participantID,
		).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ConsultationGormRepository) CreateConsultation(
	ctx context.Context,
	c *domain.Consultation,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(c).Error
}

func (r *ConsultationGormRepository) UpdateStatus(
	ctx context.Context,
	consultationID string,
	status domain.Status,
	updatedAt time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&domain.Consultation{}).
		Where("id = ?", consultationID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": updatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// --------------------------------------------------
// Counterparties
// --------------------------------------------------

func (r *ConsultationGormRepository) IsProfessional(
	ctx context.Context,
	accountID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&account.Account{}).
		Where("id = ? AND role = ?", accountID, account.RoleProfessional).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ConsultationGormRepository) EnsureClientLink(
	ctx context.Context,
	clientID string,
	professionalID string,
) error {

	link := models.ClientLink{
		ClientID:       clientID,
		ProfessionalID: professionalID,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

// Compile-time check
var _ domain.Repository = (*ConsultationGormRepository)(nil)
