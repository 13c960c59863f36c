package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vivafit/vivafit-api/internal/config"
	"github.com/vivafit/vivafit-api/internal/domain/account"
	"github.com/vivafit/vivafit-api/internal/domain/consultation"
	"github.com/vivafit/vivafit-api/internal/domain/tracking"
	"github.com/vivafit/vivafit-api/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
		Logger:      newGormLogger(log, cfg.IsProduction()),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if cfg.SeedDemo {
		if err := SeedDemo(db); err != nil {
			return nil, fmt.Errorf("seed demo accounts: %w", err)
		}
		log.Info("demo accounts seeded")
	}

	return db, nil
}

// newGormLogger sends gorm's slow query and error lines through zap as
// plain text.
func newGormLogger(log *zap.Logger, production bool) gormlogger.Interface {
	level := gormlogger.Warn
	if production {
		level = gormlogger.Error
	}

	// NewStdLogAt only errors for an invalid level; WarnLevel is valid.
	stdLog, _ := zap.NewStdLogAt(log.Named("gorm"), zap.WarnLevel)

	return gormlogger.New(
		stdLog,
		gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(driver) {
	case "", "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&account.Account{},
		&consultation.Consultation{},
		&models.ClientLink{},
		&models.AuditLog{},
		&tracking.Exercise{},
		&tracking.DailyProgress{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const DemoPassword = "vivafit123"

// SeedDemo creates the two demo accounts if they are missing. Existing rows,
// matched by email, are left untouched.
func SeedDemo(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demo := []account.Account{
		{
			Name:  "John Doe",
			Email: "user@example.com",
			Role:  account.RoleClient,
			Preferences: account.Preferences{
				Theme:    account.ThemeSystem,
				FontSize: account.FontMedium,
			},
		},
		{
			Name:  "Dr. Jane Smith",
			Email: "pro@example.com",
			Role:  account.RoleProfessional,
			Preferences: account.Preferences{
				Theme:    account.ThemeLight,
				FontSize: account.FontMedium,
			},
		},
	}

	for _, a := range demo {
		a.ID = uuid.NewString()
		a.PasswordHash = string(hash)

		var stored account.Account
		if err := db.
			Where(account.Account{Email: a.Email}).
			Attrs(a).
			FirstOrCreate(&stored).Error; err != nil {
			return fmt.Errorf("seed %s: %w", a.Email, err)
		}
	}

	return nil
}
