package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"linkshelf/internal/config"
	applog "linkshelf/internal/log"
	"linkshelf/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Dialector picks the gorm driver for a database URL. postgres:// and
// postgresql:// URLs use postgres; "sqlite:" prefixed values and bare paths use sqlite.
func Dialector(url string) (gorm.Dialector, error) {
	trimmed := strings.TrimSpace(url)
	lower := strings.ToLower(trimmed)
	switch {
	case trimmed == "":
		return nil, fmt.Errorf("database URL must not be empty")
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return postgres.Open(trimmed), nil
	case strings.HasPrefix(lower, "sqlite://"):
		return sqlite.Open(trimmed[len("sqlite://"):]), nil
	case strings.HasPrefix(lower, "sqlite:"):
		return sqlite.Open(trimmed[len("sqlite:"):]), nil
	case strings.Contains(lower, "://"):
		return nil, fmt.Errorf("unsupported database scheme in %q", trimmed)
	default:
		return sqlite.Open(trimmed), nil
	}
}

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.URL)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Warn),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	applog.Debug(context.Background(), "database opened", "dialect", dialector.Name())
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}

	return db.AutoMigrate(
		&models.Profile{},
		&models.Link{},
	)
}

// LoadProfile fetches the profile with the given handle, or the first profile
// when handle is empty, with its links preloaded.
func LoadProfile(ctx context.Context, db *gorm.DB, handle string) (*models.Profile, error) {
	if db == nil {
		return nil, gorm.ErrInvalidDB
	}

	profile := &models.Profile{}
	query := db.WithContext(ctx).Preload("Links", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC").Order("id ASC")
	})
	if strings.TrimSpace(handle) != "" {
		query = query.Where("handle = ?", strings.TrimSpace(handle))
	}
	if err := query.Order("id ASC").First(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func Configure(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := Initialize(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(database); err != nil {
		return nil, err
	}

	return database, nil
}
