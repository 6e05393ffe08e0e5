package db

import (
	"hotel_reservation/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Models lists every table managed by the application
func Models() []any {
	return []any{&domain.Customer{}, &domain.Manager{}, &domain.Room{}, &domain.Reservation{}}
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and unique indexes
	if err := db.AutoMigrate(Models()...); err != nil {
		logrus.WithField("error", err.Error()).Error("Migration failed")
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
