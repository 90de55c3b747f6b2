package calendar

import (
	"context"
	"fmt"
	"time"

	"courtbooking/internal/domain"
)

// DefaultWeekend is used when no weekend days are configured.
var DefaultWeekend = []time.Weekday{time.Saturday, time.Sunday}

// Classifier maps a calendar date to its day type. Holidays win over
// weekends.
type Classifier struct {
	holidays HolidayRepository
	weekend  map[time.Weekday]bool
}

func NewClassifier(holidays HolidayRepository, weekendDays []time.Weekday) *Classifier {
	if len(weekendDays) == 0 {
		weekendDays = DefaultWeekend
	}
	weekend := make(map[time.Weekday]bool, len(weekendDays))
	for _, d := range weekendDays {
		weekend[d] = true
	}
	return &Classifier{holidays: holidays, weekend: weekend}
}

// Classify only reads the date part of date; the caller picks the location.
func (c *Classifier) Classify(ctx context.Context, date time.Time) (domain.DayType, error) {
	key := domain.DateKey(date)

	matches, err := c.holidays.FindMatching(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: load holidays for %s: %w", domain.ErrInfrastructure, key, err)
	}
	for _, h := range matches {
		if h.Matches(key) {
			return domain.DayHoliday, nil
		}
	}

	if c.weekend[date.Weekday()] {
		return domain.DayWeekend, nil
	}
	return domain.DayWeekday, nil
}

// IsWeekend reports whether d is one of the configured weekend days.
func (c *Classifier) IsWeekend(d time.Weekday) bool {
	return c.weekend[d]
}
