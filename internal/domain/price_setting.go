package domain

import "time"

// PriceSetting is a time-bounded unit price. A nil CourtID applies to every
// court and a nil SlotIndex to every slot. A nil EffectiveTo is open-ended.
// Dates are "YYYY-MM-DD" strings so range checks compare lexically in SQL.
type PriceSetting struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	CourtID       *int64    `json:"court_id" gorm:"index"`
	SlotIndex     *int      `json:"slot_index"`
	DayType       DayType   `json:"day_type" gorm:"size:16;not null;index"`
	UnitPrice     int64     `json:"unit_price" gorm:"not null"`
	EffectiveFrom string    `json:"effective_from" gorm:"size:10;not null"`
	EffectiveTo   *string   `json:"effective_to" gorm:"size:10"`
	IsActive      bool      `json:"is_active" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (PriceSetting) TableName() string { return "price_settings" }

// Covers reports whether date lies inside the effective range.
func (p PriceSetting) Covers(date string) bool {
	if date < p.EffectiveFrom {
		return false
	}
	return p.EffectiveTo == nil || date <= *p.EffectiveTo
}

// SameKey reports whether both settings target the same court, slot and day type.
func (p PriceSetting) SameKey(o PriceSetting) bool {
	return p.DayType == o.DayType && equalInt64Ptr(p.CourtID, o.CourtID) && equalIntPtr(p.SlotIndex, o.SlotIndex)
}

// Overlaps reports whether the two effective ranges share at least one day.
func (p PriceSetting) Overlaps(o PriceSetting) bool {
	if p.EffectiveTo != nil && *p.EffectiveTo < o.EffectiveFrom {
		return false
	}
	if o.EffectiveTo != nil && *o.EffectiveTo < p.EffectiveFrom {
		return false
	}
	return true
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
