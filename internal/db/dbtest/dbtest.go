// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/vivafit/vivafit-api/internal/db"
	"github.com/vivafit/vivafit-api/internal/domain/account"
)

// New returns a migrated in-memory SQLite database that lives as long as t.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// CreateAccount inserts an account with default preferences.
func CreateAccount(t testing.TB, db *gorm.DB, name, email string, role account.Role) account.Account {
	t.Helper()

	a := account.Account{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Role:        role,
		Preferences: account.DefaultPreferences(),
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create account %s: %v", email, err)
	}
	return a
}
