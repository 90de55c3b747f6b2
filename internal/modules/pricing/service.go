package pricing

import (
	"context"
	"fmt"
	"time"

	"courtbooking/internal/domain"
	"courtbooking/internal/repository"
)

// Tier is one specificity level. A false flag means the setting must leave
// that column empty.
type Tier struct {
	Name      string
	WithCourt bool
	WithSlot  bool
}

// Tiers are tried in order; the first tier with exactly one match wins.
var Tiers = []Tier{
	{Name: "court_slot", WithCourt: true, WithSlot: true},
	{Name: "court", WithCourt: true},
	{Name: "slot", WithSlot: true},
	{Name: "global"},
}

type Price struct {
	SettingID int64
	Amount    int64
	DayType   domain.DayType
	Tier      string
}

type Resolver struct {
	settings   PriceSettingRepository
	classifier DayClassifier
}

func NewResolver(settings PriceSettingRepository, classifier DayClassifier) *Resolver {
	return &Resolver{settings: settings, classifier: classifier}
}

func (r *Resolver) ResolvePrice(ctx context.Context, courtID int64, slotIndex int, date time.Time) (*Price, error) {
	dayType, err := r.classifier.Classify(ctx, date)
	if err != nil {
		return nil, err
	}
	return r.ResolveForDayType(ctx, courtID, slotIndex, date, dayType)
}

// ResolveForDayType skips classification for callers that price many slots
// of one date.
func (r *Resolver) ResolveForDayType(ctx context.Context, courtID int64, slotIndex int, date time.Time, dayType domain.DayType) (*Price, error) {
	key := domain.DateKey(date)

	for _, tier := range Tiers {
		q := repository.PriceLookup{DayType: dayType, Date: key}
		if tier.WithCourt {
			q.CourtID = &courtID
		}
		if tier.WithSlot {
			q.SlotIndex = &slotIndex
		}

		rows, err := r.settings.FindEffective(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("%w: load %s price settings: %w", domain.ErrInfrastructure, tier.Name, err)
		}

		switch len(rows) {
		case 0:
			continue
		case 1:
			return &Price{
				SettingID: rows[0].ID,
				Amount:    rows[0].UnitPrice,
				DayType:   dayType,
				Tier:      tier.Name,
			}, nil
		default:
			ids := make([]int64, len(rows))
			for i, row := range rows {
				ids[i] = row.ID
			}
			return nil, &AmbiguousPriceError{
				Tier:       tier.Name,
				CourtID:    courtID,
				SlotIndex:  slotIndex,
				Date:       key,
				DayType:    dayType,
				SettingIDs: ids,
			}
		}
	}

	return nil, fmt.Errorf("%w: no price for court %d slot %d on %s (%s)",
		domain.ErrNotFound, courtID, slotIndex, key, dayType)
}
