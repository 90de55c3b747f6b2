package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingFailed    BookingStatus = "failed"
)

// IsLive reports whether a booking in this status occupies its slot.
func (s BookingStatus) IsLive() bool {
	return s == BookingPending || s == BookingConfirmed
}

// LiveBookingStatuses lists the statuses that block a slot, as plain strings for SQL IN clauses.
func LiveBookingStatuses() []string {
	return []string{string(BookingPending), string(BookingConfirmed)}
}

// Booking is read from the ledger owned by the booking flow. The core never
// changes its status.
type Booking struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	CourtID   int64         `json:"court_id" gorm:"not null;index:idx_bookings_court_date,priority:1"`
	Date      string        `json:"date" gorm:"size:10;not null;index:idx_bookings_court_date,priority:2"`
	SlotIndex int           `json:"slot_index" gorm:"not null"`
	UserID    int64         `json:"user_id" gorm:"not null;index"`
	Status    BookingStatus `json:"status" gorm:"size:16;not null;index"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }
