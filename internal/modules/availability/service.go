package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"courtbooking/internal/domain"
)

type PriceStatus string

const (
	PriceOK        PriceStatus = "ok"
	PriceNotFound  PriceStatus = "not_found"
	PriceAmbiguous PriceStatus = "ambiguous"
)

type SlotWithPrice struct {
	SlotIndex   int         `json:"slot_index"`
	StartTime   string      `json:"start_time"`
	EndTime     string      `json:"end_time"`
	Price       *int64      `json:"price"`
	PriceStatus PriceStatus `json:"price_status"`
}

type Availability struct {
	CourtID int64           `json:"court_id"`
	Date    string          `json:"date"`
	DayType domain.DayType  `json:"day_type"`
	Slots   []SlotWithPrice `json:"slots"`
}

type Resolver struct {
	slots      SlotDefinitionRepository
	bookings   BookingRepository
	classifier DayClassifier
	prices     PriceResolver
	log        *zap.Logger
}

func NewResolver(
	slots SlotDefinitionRepository,
	bookings BookingRepository,
	classifier DayClassifier,
	prices PriceResolver,
	log *zap.Logger,
) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		slots:      slots,
		bookings:   bookings,
		classifier: classifier,
		prices:     prices,
		log:        log,
	}
}

// AvailableSlots lists the court's slots on date that carry no live booking,
// ordered by slot index. A slot whose price cannot be resolved is still
// listed, with a nil price and a status saying why.
func (r *Resolver) AvailableSlots(ctx context.Context, courtID int64, date time.Time) (*Availability, error) {
	key := domain.DateKey(date)

	defs, err := r.slots.ListByCourt(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("%w: load slot definitions: %w", domain.ErrInfrastructure, err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: court %d has no slot definitions", domain.ErrNotFound, courtID)
	}

	booked, err := r.bookings.LiveSlotIndices(ctx, courtID, key)
	if err != nil {
		return nil, fmt.Errorf("%w: load bookings: %w", domain.ErrInfrastructure, err)
	}
	taken := make(map[int]struct{}, len(booked))
	for _, idx := range booked {
		taken[idx] = struct{}{}
	}

	dayType, err := r.classifier.Classify(ctx, date)
	if err != nil {
		return nil, err
	}

	out := &Availability{
		CourtID: courtID,
		Date:    key,
		DayType: dayType,
		Slots:   make([]SlotWithPrice, 0, len(defs)),
	}
	for _, def := range defs {
		if _, ok := taken[def.SlotIndex]; ok {
			continue
		}

		slot := SlotWithPrice{
			SlotIndex: def.SlotIndex,
			StartTime: def.StartTime,
			EndTime:   def.EndTime,
		}

		price, err := r.prices.ResolveForDayType(ctx, courtID, def.SlotIndex, date, dayType)
		switch {
		case err == nil:
			amount := price.Amount
			slot.Price = &amount
			slot.PriceStatus = PriceOK
		case errors.Is(err, domain.ErrAmbiguous):
			r.log.Warn("ambiguous price configuration",
				zap.Int64("court_id", courtID),
				zap.Int("slot_index", def.SlotIndex),
				zap.String("date", key),
				zap.Error(err),
			)
			slot.PriceStatus = PriceAmbiguous
		case errors.Is(err, domain.ErrNotFound):
			slot.PriceStatus = PriceNotFound
		default:
			return nil, err
		}

		out.Slots = append(out.Slots, slot)
	}

	return out, nil
}
