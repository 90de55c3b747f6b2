package domain

import "time"

// HolidayDate marks a date as a holiday. Recurring entries match the same
// month and day in every year; MonthDay ("MM-DD") is kept for that lookup.
type HolidayDate struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	Date              string    `json:"date" gorm:"size:10;not null;uniqueIndex"`
	MonthDay          string    `json:"-" gorm:"size:5;not null;index"`
	IsRecurringYearly bool      `json:"is_recurring_yearly" gorm:"not null"`
	Name              string    `json:"name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func (HolidayDate) TableName() string { return "holiday_dates" }

// Matches reports whether the holiday applies to date ("YYYY-MM-DD").
func (h HolidayDate) Matches(date string) bool {
	if h.Date == date {
		return true
	}
	return h.IsRecurringYearly && len(date) == len(DateLayout) && len(h.Date) == len(DateLayout) && date[5:] == h.Date[5:]
}
