package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"courtbooking/internal/domain"
	"courtbooking/internal/pkg/validator"
)

// Service places pending reservations through the conflict guard. Payment
// and confirmation happen elsewhere.
type Service struct {
	bookings BookingRepository
	slots    SlotDefinitionRepository
	log      *zap.Logger
}

func NewService(bookings BookingRepository, slots SlotDefinitionRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{bookings: bookings, slots: slots, log: log}
}

// Reserve creates a pending booking for one slot. Of two concurrent calls
// for the same slot exactly one succeeds; the other gets an error matching
// both ErrSlotTaken and domain.ErrConflict.
func (s *Service) Reserve(ctx context.Context, req ReserveRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrValidation, ErrInvalidRequest, errs)
	}
	if _, err := domain.ParseDate(req.Date, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	def, err := s.slots.Get(ctx, req.CourtID, req.SlotIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: load slot definition: %w", domain.ErrInfrastructure, err)
	}
	if def == nil {
		return nil, fmt.Errorf("%w: court %d has no slot %d", domain.ErrNotFound, req.CourtID, req.SlotIndex)
	}

	b := &domain.Booking{
		CourtID:   req.CourtID,
		Date:      req.Date,
		SlotIndex: req.SlotIndex,
		UserID:    req.UserID,
	}
	if err := s.bookings.Reserve(ctx, b); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: reserve slot: %w", domain.ErrInfrastructure, err)
	}

	s.log.Info("slot reserved",
		zap.Int64("booking_id", b.ID),
		zap.Int64("court_id", b.CourtID),
		zap.String("date", b.Date),
		zap.Int("slot_index", b.SlotIndex),
	)
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: load booking: %w", domain.ErrInfrastructure, err)
	}
	return b, nil
}
