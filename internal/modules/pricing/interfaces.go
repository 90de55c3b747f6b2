package pricing

import (
	"context"
	"time"

	"courtbooking/internal/domain"
	"courtbooking/internal/repository"
)

// PriceSettingRepository returns the active settings of one tier covering a date.
type PriceSettingRepository interface {
	FindEffective(ctx context.Context, q repository.PriceLookup) ([]domain.PriceSetting, error)
}

// DayClassifier is satisfied by calendar.Classifier.
type DayClassifier interface {
	Classify(ctx context.Context, date time.Time) (domain.DayType, error)
}

// SlotDefinitionRepository is used by the handler to tell an unknown slot
// from an unpriced one.
type SlotDefinitionRepository interface {
	Get(ctx context.Context, courtID int64, slotIndex int) (*domain.CourtSlotDefinition, error)
}
