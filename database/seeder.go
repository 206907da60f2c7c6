package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salahou-dine/hon-hon/models"
)

// DemoOwnerID владелец демо-бронирований для локальной разработки
const DemoOwnerID = "guest:demo"

// SeedDemoBookings если у демо-пользователя нет бронирований, создает по одному на
// каждую фазу поездки относительно today. Возвращает число созданных записей.
func SeedDemoBookings(db *gorm.DB, today models.Date) (int, error) {
	var count int64
	if err := db.Model(&models.Booking{}).Where("owner_id = ?", DemoOwnerID).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	retAfter := func(days int) *models.Date {
		d := today.AddDays(days)
		return &d
	}

	bookings := []models.Booking{
		{Destination: "Paris", TripType: models.TripTypeRoundtrip, Cabin: "economy", DepartDate: today.AddDays(30), ReturnDate: retAfter(44)},
		{Destination: "Istanbul", TripType: models.TripTypeRoundtrip, Cabin: "business", DepartDate: today.AddDays(3), ReturnDate: retAfter(6)},
		{Destination: "Dakar", TripType: models.TripTypeOneway, Cabin: "economy", DepartDate: today.AddDays(-2)},
		{Destination: "Madrid", TripType: models.TripTypeRoundtrip, Cabin: "economy", DepartDate: today.AddDays(-20), ReturnDate: retAfter(-12)},
	}
	for i := range bookings {
		bookings[i].ID = uuid.NewString()
		bookings[i].OwnerID = DemoOwnerID
		bookings[i].Origin = "CMN"
	}

	consent := models.Consent{UserID: DemoOwnerID, DestinationRecosEnabled: true}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bookings).Error; err != nil {
			return err
		}
		return tx.Save(&consent).Error
	})
	if err != nil {
		return 0, err
	}
	return len(bookings), nil
}
