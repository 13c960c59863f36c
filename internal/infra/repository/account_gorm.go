package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vivafit/vivafit-api/internal/domain/account"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetAccountByID(
	ctx context.Context,
	id string,
) (*account.Account, error) {

	var a account.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	a.Normalize()
	return &a, nil
}

func (r *AccountGormRepository) GetAccountByEmail(
	ctx context.Context,
	email string,
) (*account.Account, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	var a account.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	a.Normalize()
	return &a, nil
}

func (r *AccountGormRepository) UpdatePreferences(
	ctx context.Context,
	id string,
	prefs account.Preferences,
) error {

	res := r.db.WithContext(ctx).
		Model(&account.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"theme":         prefs.Theme,
			"font_size":     prefs.FontSize,
			"high_contrast": prefs.HighContrast,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *AccountGormRepository) ListLinkedClients(
	ctx context.Context,
	professionalID string,
	query string,
) ([]account.Account, error) {

	q := r.db.WithContext(ctx).
		Model(&account.Account{}).
		Joins("JOIN client_professionals cp ON cp.client_id = accounts.id").
		Where("cp.professional_id = ?", professionalID)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"(LOWER(accounts.name) LIKE ? OR LOWER(accounts.email) LIKE ?)",
			like, like,
		)
	}

	var clients []account.Account
	if err := q.
		Order("accounts.name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}

	for i := range clients {
		clients[i].Normalize()
	}
	return clients, nil
}

// Compile-time check
var _ account.Repository = (*AccountGormRepository)(nil)
