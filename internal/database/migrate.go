package database

import (
	"fmt"

	"gorm.io/gorm"

	"courtbooking/internal/domain"
)

// liveBookingIndex backs the reservation guard: one pending or confirmed
// booking per court, date and slot. Both PostgreSQL and SQLite accept
// partial indexes in this form.
const liveBookingIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_live_slot
ON bookings (court_id, date, slot_index)
WHERE status IN ('pending', 'confirmed')`

// Migrate creates or updates every table the core reads and writes.
func Migrate(db *gorm.DB) error {
	models := []any{
		&domain.CourtSlotDefinition{},
		&domain.Booking{},
		&domain.SlotOccupancy{},
		&domain.PriceSetting{},
		&domain.HolidayDate{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	if err := db.Exec(liveBookingIndex).Error; err != nil {
		return fmt.Errorf("create live booking index: %w", err)
	}
	return nil
}
