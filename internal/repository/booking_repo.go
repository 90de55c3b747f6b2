package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtbooking/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// LiveSlotIndices returns the slot indices of a court that hold a pending or
// confirmed booking on date.
func (r *BookingRepository) LiveSlotIndices(ctx context.Context, courtID int64, date string) ([]int, error) {
	var out []int
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Distinct("slot_index").
		Where("court_id = ? AND date = ?", courtID, date).
		Where("status IN ?", domain.LiveBookingStatuses()).
		Order("slot_index").
		Pluck("slot_index", &out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a booking as-is. It is meant for seeding ledger history;
// new reservations go through Reserve.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Reserve is the atomic check-and-set for a slot: inside one transaction it
// locks any live booking for (court, date, slot), refuses with ErrConflict if
// one exists, inserts b as pending and marks the slot reserved. The partial
// unique index catches the race the lock cannot (no row to lock yet).
func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("court_id = ? AND date = ? AND slot_index = ?", b.CourtID, b.Date, b.SlotIndex).
			Where("status IN ?", domain.LiveBookingStatuses()).
			Take(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: slot %d of court %d on %s is held by booking %d",
				domain.ErrConflict, b.SlotIndex, b.CourtID, b.Date, existing.ID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		b.Status = domain.BookingPending
		if err := tx.Create(b).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: slot %d of court %d on %s was taken concurrently",
					domain.ErrConflict, b.SlotIndex, b.CourtID, b.Date)
			}
			return err
		}

		now := time.Now().UTC()
		occ := domain.SlotOccupancy{
			CourtID:   b.CourtID,
			Date:      b.Date,
			SlotIndex: b.SlotIndex,
			Status:    domain.OccupancyReserved,
			UpdatedAt: now,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "court_id"}, {Name: "date"}, {Name: "slot_index"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":     domain.OccupancyReserved,
				"updated_at": now,
			}),
		}).Create(&occ).Error
	})
}
