package pricing

import "courtbooking/internal/domain"

type PriceURI struct {
	CourtID   int64 `uri:"id" binding:"required,min=1"`
	SlotIndex int   `uri:"slot" binding:"min=0"`
}

type PriceQuery struct {
	Date string `form:"date" binding:"required"`
}

type PriceResponse struct {
	CourtID   int64          `json:"court_id"`
	SlotIndex int            `json:"slot_index"`
	Date      string         `json:"date"`
	DayType   domain.DayType `json:"day_type"`
	Price     int64          `json:"price"`
	Tier      string         `json:"tier"`
	SettingID int64          `json:"setting_id"`
}
