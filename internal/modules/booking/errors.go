package booking

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid reservation request")
	ErrSlotTaken      = errors.New("slot already booked")
)
