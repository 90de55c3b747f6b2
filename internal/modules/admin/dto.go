package admin

import "courtbooking/internal/domain"

type SlotInput struct {
	SlotIndex int    `json:"slot_index" validate:"gte=0"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
}

type ReplaceSlotsRequest struct {
	Slots []SlotInput `json:"slots" validate:"required,min=1,dive"`
}

type CreatePriceSettingRequest struct {
	CourtID       *int64         `json:"court_id" validate:"omitempty,gt=0"`
	SlotIndex     *int           `json:"slot_index" validate:"omitempty,gte=0"`
	DayType       domain.DayType `json:"day_type" validate:"required,oneof=weekday weekend holiday"`
	UnitPrice     int64          `json:"unit_price" validate:"gte=0"`
	EffectiveFrom string         `json:"effective_from" validate:"required,isodate"`
	EffectiveTo   *string        `json:"effective_to" validate:"omitempty,isodate"`
}

type CreateHolidayRequest struct {
	Date              string `json:"date" validate:"required,isodate"`
	IsRecurringYearly bool   `json:"is_recurring_yearly"`
	Name              string `json:"name" validate:"max=120"`
}

// PriceOverlap is a pair of active settings that would make price
// resolution ambiguous on the days both cover.
type PriceOverlap struct {
	First  domain.PriceSetting `json:"first"`
	Second domain.PriceSetting `json:"second"`
}
