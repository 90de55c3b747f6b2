package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"courtbooking/internal/domain"
	"courtbooking/internal/pkg/validator"
)

// Service maintains the reference data read by the resolvers: slot
// templates, price settings and holidays.
type Service struct {
	slots    SlotDefinitionRepository
	prices   PriceSettingRepository
	holidays HolidayRepository
	log      *zap.Logger
}

func NewService(
	slots SlotDefinitionRepository,
	prices PriceSettingRepository,
	holidays HolidayRepository,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{slots: slots, prices: prices, holidays: holidays, log: log}
}

func validationError(errs map[string]string) error {
	return fmt.Errorf("%w: %v", domain.ErrValidation, errs)
}

// -------------------- Slots --------------------

// ReplaceSlots swaps a court's slot template. Indices must run 0..n-1 and
// the windows must not overlap.
func (s *Service) ReplaceSlots(ctx context.Context, courtID int64, req ReplaceSlotsRequest) ([]domain.CourtSlotDefinition, error) {
	if courtID <= 0 {
		return nil, fmt.Errorf("%w: invalid court id", domain.ErrValidation)
	}
	if errs := validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}

	slots := append([]SlotInput(nil), req.Slots...)
	sort.Slice(slots, func(i, j int) bool { return slots[i].SlotIndex < slots[j].SlotIndex })

	defs := make([]domain.CourtSlotDefinition, 0, len(slots))
	for i, in := range slots {
		if in.SlotIndex != i {
			return nil, fmt.Errorf("%w: slot indices must be 0..%d without gaps or repeats", domain.ErrValidation, len(slots)-1)
		}
		if in.StartTime >= in.EndTime {
			return nil, fmt.Errorf("%w: slot %d starts at or after its end", domain.ErrValidation, in.SlotIndex)
		}
		if i > 0 && in.StartTime < slots[i-1].EndTime {
			return nil, fmt.Errorf("%w: slot %d overlaps slot %d", domain.ErrValidation, in.SlotIndex, i-1)
		}
		defs = append(defs, domain.CourtSlotDefinition{
			CourtID:   courtID,
			SlotIndex: in.SlotIndex,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
	}

	if err := s.slots.ReplaceForCourt(ctx, courtID, defs); err != nil {
		return nil, fmt.Errorf("%w: replace slots: %w", domain.ErrInfrastructure, err)
	}
	s.log.Info("court slots replaced", zap.Int64("court_id", courtID), zap.Int("count", len(defs)))

	out, err := s.slots.ListByCourt(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("%w: reload slots: %w", domain.ErrInfrastructure, err)
	}
	return out, nil
}

func (s *Service) ListSlots(ctx context.Context, courtID int64) ([]domain.CourtSlotDefinition, error) {
	out, err := s.slots.ListByCourt(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("%w: list slots: %w", domain.ErrInfrastructure, err)
	}
	return out, nil
}

// -------------------- Price settings --------------------

// CreatePriceSetting rejects a setting whose range overlaps an active one
// with the same court, slot and day type.
func (s *Service) CreatePriceSetting(ctx context.Context, req CreatePriceSettingRequest) (*domain.PriceSetting, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}
	if _, err := domain.ParseDate(req.EffectiveFrom, nil); err != nil {
		return nil, err
	}
	if req.EffectiveTo != nil {
		if _, err := domain.ParseDate(*req.EffectiveTo, nil); err != nil {
			return nil, err
		}
		if *req.EffectiveTo < req.EffectiveFrom {
			return nil, fmt.Errorf("%w: effective_to is before effective_from", domain.ErrValidation)
		}
	}

	p := &domain.PriceSetting{
		CourtID:       req.CourtID,
		SlotIndex:     req.SlotIndex,
		DayType:       req.DayType,
		UnitPrice:     req.UnitPrice,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
		IsActive:      true,
	}

	existing, err := s.prices.ListActiveByKey(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("%w: load price settings: %w", domain.ErrInfrastructure, err)
	}
	for _, e := range existing {
		if e.Overlaps(*p) {
			return nil, fmt.Errorf("%w: overlaps active price setting %d", domain.ErrConflict, e.ID)
		}
	}

	if err := s.prices.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: create price setting: %w", domain.ErrInfrastructure, err)
	}
	s.log.Info("price setting created",
		zap.Int64("setting_id", p.ID),
		zap.String("day_type", string(p.DayType)),
		zap.Int64("unit_price", p.UnitPrice),
	)
	return p, nil
}

func (s *Service) DeactivatePriceSetting(ctx context.Context, id int64) error {
	ok, err := s.prices.Deactivate(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: deactivate price setting: %w", domain.ErrInfrastructure, err)
	}
	if !ok {
		return fmt.Errorf("%w: price setting %d", domain.ErrNotFound, id)
	}
	s.log.Info("price setting deactivated", zap.Int64("setting_id", id))
	return nil
}

func (s *Service) ListPriceSettings(ctx context.Context) ([]domain.PriceSetting, error) {
	rows, err := s.prices.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list price settings: %w", domain.ErrInfrastructure, err)
	}
	return rows, nil
}

// FindPriceOverlaps lists active pairs that share a key and a day. Such rows
// can exist when they were written before overlap checks were enforced.
func (s *Service) FindPriceOverlaps(ctx context.Context) ([]PriceOverlap, error) {
	rows, err := s.ListPriceSettings(ctx)
	if err != nil {
		return nil, err
	}

	out := []PriceOverlap{}
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			if rows[i].SameKey(rows[j]) && rows[i].Overlaps(rows[j]) {
				out = append(out, PriceOverlap{First: rows[i], Second: rows[j]})
			}
		}
	}
	return out, nil
}

// -------------------- Holidays --------------------

func (s *Service) CreateHoliday(ctx context.Context, req CreateHolidayRequest) (*domain.HolidayDate, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}
	if _, err := domain.ParseDate(req.Date, nil); err != nil {
		return nil, err
	}

	h := &domain.HolidayDate{
		Date:              req.Date,
		IsRecurringYearly: req.IsRecurringYearly,
		Name:              req.Name,
	}
	if err := s.holidays.Create(ctx, h); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: create holiday: %w", domain.ErrInfrastructure, err)
	}
	s.log.Info("holiday created", zap.String("date", h.Date), zap.Bool("recurring", h.IsRecurringYearly))
	return h, nil
}

func (s *Service) ListHolidays(ctx context.Context) ([]domain.HolidayDate, error) {
	rows, err := s.holidays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list holidays: %w", domain.ErrInfrastructure, err)
	}
	return rows, nil
}
