package booking

import (
	"context"

	"courtbooking/internal/domain"
)

// BookingRepository is the storage side of the conflict guard.
type BookingRepository interface {
	Reserve(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type SlotDefinitionRepository interface {
	Get(ctx context.Context, courtID int64, slotIndex int) (*domain.CourtSlotDefinition, error)
}
