package migrations

import "gorm.io/gorm"

// AddBookingConstraints у поездки в одну сторону нет даты возврата
func AddBookingConstraints(db *gorm.DB) error {
	if err := db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'chk_bookings_oneway_return'
			) THEN
				ALTER TABLE bookings
					ADD CONSTRAINT chk_bookings_oneway_return
					CHECK (trip_type <> 'oneway' OR return_date IS NULL);
			END IF;
		END $$;
	`).Error; err != nil {
		return err
	}

	if err := db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'chk_bookings_trip_type'
			) THEN
				ALTER TABLE bookings
					ADD CONSTRAINT chk_bookings_trip_type
					CHECK (trip_type IN ('oneway', 'roundtrip'));
			END IF;
		END $$;
	`).Error; err != nil {
		return err
	}

	return nil
}
