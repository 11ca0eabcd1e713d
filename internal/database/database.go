package database

import (
	"hackhub/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Initialize(dbPath string) (*gorm.DB, error) {
	// TranslateError maps driver unique-constraint failures onto
	// gorm.ErrDuplicatedKey, which the invite-code retry loop and the
	// duplicate-email check rely on.
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Submission{},
		&models.Feedback{},
		&models.Sponsor{},
		&models.LiveUpdate{},
		&models.Notification{},
		&models.PushSubscription{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
