package domain

import "time"

type OccupancyStatus string

const (
	OccupancyFree     OccupancyStatus = "free"
	OccupancyReserved OccupancyStatus = "reserved"
)

// SlotOccupancy is the denormalized per-date flag used for display and
// locking. Only the reservation guard and the sweeper write it.
type SlotOccupancy struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	CourtID   int64           `json:"court_id" gorm:"not null;uniqueIndex:idx_occupancy_slot,priority:1"`
	Date      string          `json:"date" gorm:"size:10;not null;uniqueIndex:idx_occupancy_slot,priority:2;index"`
	SlotIndex int             `json:"slot_index" gorm:"not null;uniqueIndex:idx_occupancy_slot,priority:3"`
	Status    OccupancyStatus `json:"status" gorm:"size:16;not null;index"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (SlotOccupancy) TableName() string { return "slot_occupancies" }
