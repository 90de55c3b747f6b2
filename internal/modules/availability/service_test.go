package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"courtbooking/internal/domain"
	"courtbooking/internal/modules/calendar"
	"courtbooking/internal/modules/pricing"
	"courtbooking/internal/repository"
	"courtbooking/internal/testutil"
)

func date(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int        { return &v }

type fixture struct {
	db       *gorm.DB
	resolver *Resolver
	bookings *repository.BookingRepository
	prices   *repository.PriceSettingRepository
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	ctx := context.Background()

	slots := repository.NewSlotDefinitionRepository(db)
	require.NoError(t, slots.ReplaceForCourt(ctx, 1, []domain.CourtSlotDefinition{
		{SlotIndex: 0, StartTime: "08:00", EndTime: "09:00"},
		{SlotIndex: 1, StartTime: "09:00", EndTime: "10:00"},
		{SlotIndex: 2, StartTime: "10:00", EndTime: "11:00"},
		{SlotIndex: 3, StartTime: "11:00", EndTime: "12:00"},
	}))

	bookings := repository.NewBookingRepository(db)
	prices := repository.NewPriceSettingRepository(db)
	classifier := calendar.NewClassifier(repository.NewHolidayRepository(db), nil)

	return &fixture{
		db:       db,
		bookings: bookings,
		prices:   prices,
		resolver: NewResolver(slots, bookings, classifier, pricing.NewResolver(prices, classifier), zaptest.NewLogger(t)),
	}
}

func indices(slots []SlotWithPrice) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = s.SlotIndex
	}
	return out
}

func TestAvailableSlots_ExcludesOnlyLiveBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.prices.Create(ctx, &domain.PriceSetting{
		DayType: domain.DayWeekday, UnitPrice: 100000, EffectiveFrom: "2026-01-01", IsActive: true,
	}))

	for _, b := range []domain.Booking{
		{CourtID: 1, Date: "2026-10-15", SlotIndex: 0, UserID: 1, Status: domain.BookingPending},
		{CourtID: 1, Date: "2026-10-15", SlotIndex: 1, UserID: 1, Status: domain.BookingCancelled},
		{CourtID: 1, Date: "2026-10-15", SlotIndex: 2, UserID: 1, Status: domain.BookingConfirmed},
		{CourtID: 1, Date: "2026-10-15", SlotIndex: 3, UserID: 1, Status: domain.BookingFailed},
		{CourtID: 1, Date: "2026-10-16", SlotIndex: 3, UserID: 1, Status: domain.BookingConfirmed},
	} {
		b := b
		require.NoError(t, f.bookings.Create(ctx, &b))
	}

	res, err := f.resolver.AvailableSlots(ctx, 1, date("2026-10-15"))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, indices(res.Slots))
	assert.Equal(t, domain.DayWeekday, res.DayType)
	assert.Equal(t, "2026-10-15", res.Date)
	for _, s := range res.Slots {
		require.NotNil(t, s.Price)
		assert.Equal(t, int64(100000), *s.Price)
		assert.Equal(t, PriceOK, s.PriceStatus)
	}
	assert.Equal(t, "09:00", res.Slots[0].StartTime)
	assert.Equal(t, "10:00", res.Slots[0].EndTime)
}

func TestAvailableSlots_CompletedBookingFreesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := domain.Booking{CourtID: 1, Date: "2026-10-15", SlotIndex: 2, UserID: 1, Status: domain.BookingCompleted}
	require.NoError(t, f.bookings.Create(ctx, &b))

	res, err := f.resolver.AvailableSlots(ctx, 1, date("2026-10-15"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, indices(res.Slots))
}

func TestAvailableSlots_PriceMarkers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Slot 0 priced, slot 1 ambiguous, slots 2 and 3 unpriced.
	require.NoError(t, f.prices.Create(ctx, &domain.PriceSetting{
		CourtID: int64Ptr(1), SlotIndex: intPtr(0), DayType: domain.DayWeekday,
		UnitPrice: 70000, EffectiveFrom: "2026-01-01", IsActive: true,
	}))
	for _, amount := range []int64{80000, 81000} {
		require.NoError(t, f.prices.Create(ctx, &domain.PriceSetting{
			CourtID: int64Ptr(1), SlotIndex: intPtr(1), DayType: domain.DayWeekday,
			UnitPrice: amount, EffectiveFrom: "2026-01-01", IsActive: true,
		}))
	}

	res, err := f.resolver.AvailableSlots(ctx, 1, date("2026-10-15"))
	require.NoError(t, err)
	require.Len(t, res.Slots, 4)

	require.NotNil(t, res.Slots[0].Price)
	assert.Equal(t, int64(70000), *res.Slots[0].Price)
	assert.Equal(t, PriceAmbiguous, res.Slots[1].PriceStatus)
	assert.Nil(t, res.Slots[1].Price)
	assert.Equal(t, PriceNotFound, res.Slots[2].PriceStatus)
	assert.Nil(t, res.Slots[3].Price)
}

func TestAvailableSlots_UnknownCourt(t *testing.T) {
	f := newFixture(t)

	_, err := f.resolver.AvailableSlots(context.Background(), 99, date("2026-10-15"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type MockSlots struct{ mock.Mock }

func (m *MockSlots) ListByCourt(ctx context.Context, courtID int64) ([]domain.CourtSlotDefinition, error) {
	args := m.Called(ctx, courtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CourtSlotDefinition), args.Error(1)
}

type MockBookings struct{ mock.Mock }

func (m *MockBookings) LiveSlotIndices(ctx context.Context, courtID int64, date string) ([]int, error) {
	args := m.Called(ctx, courtID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type MockClassifier struct{ mock.Mock }

func (m *MockClassifier) Classify(ctx context.Context, d time.Time) (domain.DayType, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.DayType), args.Error(1)
}

type MockPrices struct{ mock.Mock }

func (m *MockPrices) ResolveForDayType(ctx context.Context, courtID int64, slotIndex int, d time.Time, dayType domain.DayType) (*pricing.Price, error) {
	args := m.Called(ctx, courtID, slotIndex, d, dayType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Price), args.Error(1)
}

func TestAvailableSlots_ClassifiesOncePerCall(t *testing.T) {
	slots := new(MockSlots)
	bookings := new(MockBookings)
	classifier := new(MockClassifier)
	prices := new(MockPrices)

	slots.On("ListByCourt", mock.Anything, int64(1)).Return([]domain.CourtSlotDefinition{
		{SlotIndex: 0}, {SlotIndex: 1}, {SlotIndex: 2},
	}, nil)
	bookings.On("LiveSlotIndices", mock.Anything, int64(1), "2026-10-17").Return([]int{}, nil)
	classifier.On("Classify", mock.Anything, mock.Anything).Return(domain.DayWeekend, nil).Once()
	prices.On("ResolveForDayType", mock.Anything, int64(1), mock.Anything, mock.Anything, domain.DayWeekend).
		Return(&pricing.Price{Amount: 1}, nil)

	r := NewResolver(slots, bookings, classifier, prices, nil)
	res, err := r.AvailableSlots(context.Background(), 1, date("2026-10-17"))

	require.NoError(t, err)
	assert.Len(t, res.Slots, 3)
	classifier.AssertNumberOfCalls(t, "Classify", 1)
	prices.AssertNumberOfCalls(t, "ResolveForDayType", 3)
}

func TestAvailableSlots_InfrastructureErrorsPropagate(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("bookings", func(t *testing.T) {
		slots := new(MockSlots)
		bookings := new(MockBookings)
		slots.On("ListByCourt", mock.Anything, int64(1)).Return([]domain.CourtSlotDefinition{{SlotIndex: 0}}, nil)
		bookings.On("LiveSlotIndices", mock.Anything, int64(1), mock.Anything).Return(nil, cause)

		r := NewResolver(slots, bookings, new(MockClassifier), new(MockPrices), nil)
		_, err := r.AvailableSlots(context.Background(), 1, date("2026-10-15"))

		assert.ErrorIs(t, err, domain.ErrInfrastructure)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("prices", func(t *testing.T) {
		slots := new(MockSlots)
		bookings := new(MockBookings)
		classifier := new(MockClassifier)
		prices := new(MockPrices)
		slots.On("ListByCourt", mock.Anything, int64(1)).Return([]domain.CourtSlotDefinition{{SlotIndex: 0}}, nil)
		bookings.On("LiveSlotIndices", mock.Anything, int64(1), mock.Anything).Return([]int{}, nil)
		classifier.On("Classify", mock.Anything, mock.Anything).Return(domain.DayWeekday, nil)
		prices.On("ResolveForDayType", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.Join(domain.ErrInfrastructure, cause))

		r := NewResolver(slots, bookings, classifier, prices, nil)
		_, err := r.AvailableSlots(context.Background(), 1, date("2026-10-15"))

		assert.ErrorIs(t, err, domain.ErrInfrastructure)
	})
}
