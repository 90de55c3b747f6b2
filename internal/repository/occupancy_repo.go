package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtbooking/internal/domain"
)

type OccupancyRepository struct {
	db *gorm.DB
}

func NewOccupancyRepository(db *gorm.DB) *OccupancyRepository {
	return &OccupancyRepository{db: db}
}

// ElapsedSlot is a reserved occupancy row joined with its slot end time.
type ElapsedSlot struct {
	ID        int64  `gorm:"column:id"`
	CourtID   int64  `gorm:"column:court_id"`
	Date      string `gorm:"column:date"`
	SlotIndex int    `gorm:"column:slot_index"`
	EndTime   string `gorm:"column:end_time"`
}

// ListElapsedReserved returns reserved slots on date whose end time is
// strictly before clock ("HH:MM").
func (r *OccupancyRepository) ListElapsedReserved(ctx context.Context, date, clock string) ([]ElapsedSlot, error) {
	var rows []ElapsedSlot
	err := r.db.WithContext(ctx).
		Table("slot_occupancies AS o").
		Select("o.id, o.court_id, o.date, o.slot_index, d.end_time").
		Joins("JOIN court_slot_definitions d ON d.court_id = o.court_id AND d.slot_index = o.slot_index").
		Where("o.date = ? AND o.status = ?", date, domain.OccupancyReserved).
		Where("d.end_time < ?", clock).
		Order("o.court_id, o.slot_index").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Release flips one occupancy row from reserved to free under a row lock.
// It reports false when the row was no longer reserved.
func (r *OccupancyRepository) Release(ctx context.Context, id int64) (bool, error) {
	released := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var occ domain.SlotOccupancy
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&occ, id).Error; err != nil {
			return err
		}
		if occ.Status != domain.OccupancyReserved {
			return nil
		}
		res := tx.Model(&domain.SlotOccupancy{}).
			Where("id = ? AND status = ?", id, domain.OccupancyReserved).
			Updates(map[string]any{
				"status":     domain.OccupancyFree,
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		released = res.RowsAffected > 0
		return nil
	})
	return released, err
}

func (r *OccupancyRepository) ListByCourtDate(ctx context.Context, courtID int64, date string) ([]domain.SlotOccupancy, error) {
	var rows []domain.SlotOccupancy
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, date).
		Order("slot_index ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
