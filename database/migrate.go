package database

import (
	"gorm.io/gorm"

	"github.com/salahou-dine/hon-hon/database/migrations"
	"github.com/salahou-dine/hon-hon/models"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.Preference{},
		&models.Consent{},
		&models.Feedback{},
		&models.DestinationSearch{},
	); err != nil {
		return err
	}

	// Ограничения и индексы, которые AutoMigrate не умеет, только для PostgreSQL
	if db.Dialector.Name() != DriverPostgres {
		return nil
	}
	if err := migrations.AddBookingConstraints(db); err != nil {
		return err
	}
	if err := migrations.CreateSearchHistoryIndexes(db); err != nil {
		return err
	}
	return nil
}
