package account

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("account not found")

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// Preferences are the appearance settings stored with the profile.
type Preferences struct {
	Theme        Theme    `gorm:"size:10;default:'system'" json:"theme"`
	FontSize     FontSize `gorm:"size:10;default:'medium'" json:"font_size"`
	HighContrast bool     `gorm:"default:false" json:"high_contrast"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:        ThemeSystem,
		FontSize:     FontMedium,
		HighContrast: false,
	}
}

// withDefaults fills blank columns left by older rows.
func (p Preferences) withDefaults() Preferences {
	if p.Theme == "" {
		p.Theme = ThemeSystem
	}
	if p.FontSize == "" {
		p.FontSize = FontMedium
	}
	return p
}

type Account struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         Role   `gorm:"size:20;not null;default:'client'" json:"role"`

	Preferences Preferences `gorm:"embedded" json:"preferences"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a Account) Actor() Actor {
	return Actor{ID: a.ID, Role: a.Role}
}

// Normalize resolves the optional fields once so readers never see blanks.
func (a *Account) Normalize() {
	a.Preferences = a.Preferences.withDefaults()
	if !a.Role.Valid() {
		a.Role = RoleClient
	}
}

// FallbackAccount builds the minimal identity used when a session points at an
// account row that does not exist.
func FallbackAccount(id, email string) Account {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	if name == "" {
		name = id
	}

	return Account{
		ID:          id,
		Name:        name,
		Email:       email,
		Role:        RoleClient,
		Preferences: DefaultPreferences(),
	}
}

// Actor is the caller of an operation.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsProfessional() bool {
	return a.Role == RoleProfessional
}

func (a Actor) IsClient() bool {
	return a.Role == RoleClient
}

type PreferencesUpdate struct {
	Theme        *Theme
	FontSize     *FontSize
	HighContrast *bool
}

func (p Preferences) Apply(u PreferencesUpdate) Preferences {
	if u.Theme != nil {
		p.Theme = *u.Theme
	}
	if u.FontSize != nil {
		p.FontSize = *u.FontSize
	}
	if u.HighContrast != nil {
		p.HighContrast = *u.HighContrast
	}
	return p
}

type Repository interface {
	GetAccountByID(ctx context.Context, id string) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	UpdatePreferences(ctx context.Context, id string, prefs Preferences) error

	// ListLinkedClients returns the clients that have booked with the
	// professional, optionally filtered by name or email.
	ListLinkedClients(ctx context.Context, professionalID string, query string) ([]Account, error)
}
