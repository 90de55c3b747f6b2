package availability

import (
	"context"
	"time"

	"courtbooking/internal/domain"
	"courtbooking/internal/modules/pricing"
)

type SlotDefinitionRepository interface {
	ListByCourt(ctx context.Context, courtID int64) ([]domain.CourtSlotDefinition, error)
}

type BookingRepository interface {
	LiveSlotIndices(ctx context.Context, courtID int64, date string) ([]int, error)
}

type OccupancyRepository interface {
	ListByCourtDate(ctx context.Context, courtID int64, date string) ([]domain.SlotOccupancy, error)
}

type DayClassifier interface {
	Classify(ctx context.Context, date time.Time) (domain.DayType, error)
}

// PriceResolver is satisfied by pricing.Resolver.
type PriceResolver interface {
	ResolveForDayType(ctx context.Context, courtID int64, slotIndex int, date time.Time, dayType domain.DayType) (*pricing.Price, error)
}
