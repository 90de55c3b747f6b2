package calendar

import (
	"context"

	"courtbooking/internal/domain"
)

// HolidayRepository is the read side of the holiday table.
type HolidayRepository interface {
	FindMatching(ctx context.Context, date string) ([]domain.HolidayDate, error)
}
