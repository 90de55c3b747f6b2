package booking

type ReserveRequest struct {
	CourtID   int64  `json:"court_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,isodate"`
	SlotIndex int    `json:"slot_index" validate:"gte=0"`
	UserID    int64  `json:"user_id" validate:"required,gt=0"`
}
