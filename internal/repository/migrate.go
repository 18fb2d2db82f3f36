package repository

import "gorm.io/gorm"

// Migrate creates/updates the schema for every table this package
// owns. On postgres it additionally installs the exclusion constraint
// that enforces the no-overlapping-bookings invariant at the store
// level.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&spotModel{},
		&spotImageModel{},
		&reviewModel{},
		&bookingModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}
	return db.Exec(`
DO $$ BEGIN
	ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
		EXCLUDE USING gist (
			spot_id WITH =,
			tstzrange(start_date, end_date, '[]') WITH &&
		);
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;
`).Error
}
