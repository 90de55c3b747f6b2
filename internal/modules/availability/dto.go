package availability

type CourtURI struct {
	CourtID int64 `uri:"id" binding:"required,min=1"`
}

type DateQuery struct {
	Date string `form:"date" binding:"required"`
}

type OccupancyItem struct {
	SlotIndex int    `json:"slot_index"`
	Status    string `json:"status"`
}
