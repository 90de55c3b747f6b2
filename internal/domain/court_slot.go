package domain

import "time"

// CourtSlotDefinition is one bookable window in a court's daily template.
// Start and end are wall-clock "HH:MM" strings in the facility time zone.
type CourtSlotDefinition struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CourtID   int64     `json:"court_id" gorm:"not null;uniqueIndex:idx_court_slot,priority:1"`
	SlotIndex int       `json:"slot_index" gorm:"not null;uniqueIndex:idx_court_slot,priority:2"`
	StartTime string    `json:"start_time" gorm:"size:5;not null"`
	EndTime   string    `json:"end_time" gorm:"size:5;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (CourtSlotDefinition) TableName() string { return "court_slot_definitions" }
