package pricing

import (
	"fmt"

	"courtbooking/internal/domain"
)

// AmbiguousPriceError is returned when several active settings of the same
// tier cover one date. It matches domain.ErrAmbiguous.
type AmbiguousPriceError struct {
	Tier       string
	CourtID    int64
	SlotIndex  int
	Date       string
	DayType    domain.DayType
	SettingIDs []int64
}

func (e *AmbiguousPriceError) Error() string {
	return fmt.Sprintf("%s: %d %s price settings match court %d slot %d on %s (%s): ids %v",
		domain.ErrAmbiguous, len(e.SettingIDs), e.Tier, e.CourtID, e.SlotIndex, e.Date, e.DayType, e.SettingIDs)
}

func (e *AmbiguousPriceError) Unwrap() error { return domain.ErrAmbiguous }
