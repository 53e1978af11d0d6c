package mock

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "linkshelf/internal/log"
	"linkshelf/models"
)

const (
	// DemoEmail and DemoPassword sign in to the seeded profile.
	DemoEmail    = "avery@linkshelf.dev"
	DemoPassword = "linkshelf"
	DemoHandle   = "avery"
)

// New returns an in-memory sqlite database seeded with a demo profile.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:linkshelf-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Link{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	existing := &models.Profile{}
	err := db.WithContext(ctx).Where("handle = ?", DemoHandle).First(existing).Error
	if err == nil {
		applog.Debug(ctx, "mock database already seeded", "profileID", existing.ID)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	profile := &models.Profile{
		Handle:       DemoHandle,
		DisplayName:  "Avery Studio",
		Bio:          "Illustrator and type designer. Prints, process notes and the occasional zine.",
		AvatarURL:    "/assets/avatar.svg",
		Theme:        "ocean",
		Email:        DemoEmail,
		PasswordHash: string(password),
		Links: []models.Link{
			{Title: "Portfolio", URL: "https://avery.example.com", Position: 0},
			{Title: "Print shop", URL: "https://shop.example.com/avery", Position: 1},
			{Title: "Newsletter", URL: "https://letters.example.com/avery", Position: 2},
			{Title: "Old blog", URL: "https://blog.example.com/avery", Position: 3, Hidden: true},
		},
	}
	if err := db.WithContext(ctx).Create(profile).Error; err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded", "profileID", profile.ID, "links", len(profile.Links))
	return nil
}
