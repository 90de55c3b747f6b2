package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"courtbooking/internal/domain"
	"courtbooking/internal/repository"
	"courtbooking/internal/testutil"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Reserve(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b != nil {
		b.ID = 999 // simulate DB insert
		b.Status = domain.BookingPending
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) Get(ctx context.Context, courtID int64, slotIndex int) (*domain.CourtSlotDefinition, error) {
	args := m.Called(ctx, courtID, slotIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CourtSlotDefinition), args.Error(1)
}

func validRequest() ReserveRequest {
	return ReserveRequest{CourtID: 1, Date: "2026-10-15", SlotIndex: 2, UserID: 5}
}

func TestReserve_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockSlotRepository)
	slots.On("Get", mock.Anything, int64(1), 2).Return(&domain.CourtSlotDefinition{CourtID: 1, SlotIndex: 2}, nil)
	bookings.On("Reserve", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	svc := NewService(bookings, slots, zaptest.NewLogger(t))
	b, err := svc.Reserve(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "2026-10-15", b.Date)
	bookings.AssertExpectations(t)
}

func TestReserve_InvalidRequest(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockSlotRepository), nil)

	bad := []ReserveRequest{
		{Date: "2026-10-15", SlotIndex: 0, UserID: 1},
		{CourtID: 1, Date: "15/10/2026", UserID: 1},
		{CourtID: 1, Date: "2026-02-30", UserID: 1},
		{CourtID: 1, Date: "2026-10-15", SlotIndex: -1, UserID: 1},
		{CourtID: 1, Date: "2026-10-15"},
	}
	for _, req := range bad {
		_, err := svc.Reserve(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRequest, "%+v", req)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", req)
	}
}

func TestReserve_UnknownSlot(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockSlotRepository)
	slots.On("Get", mock.Anything, int64(1), 2).Return(nil, nil)

	svc := NewService(bookings, slots, nil)
	_, err := svc.Reserve(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	bookings.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestReserve_Conflict(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockSlotRepository)
	slots.On("Get", mock.Anything, int64(1), 2).Return(&domain.CourtSlotDefinition{}, nil)
	bookings.On("Reserve", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	svc := NewService(bookings, slots, nil)
	_, err := svc.Reserve(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReserve_StorageFailure(t *testing.T) {
	bookings := new(MockBookingRepository)
	slots := new(MockSlotRepository)
	slots.On("Get", mock.Anything, int64(1), 2).Return(&domain.CourtSlotDefinition{}, nil)
	cause := errors.New("broken pipe")
	bookings.On("Reserve", mock.Anything, mock.Anything).Return(cause)

	svc := NewService(bookings, slots, nil)
	_, err := svc.Reserve(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrInfrastructure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestGetBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1}, nil)
	bookings.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(bookings, new(MockSlotRepository), nil)

	b, err := svc.GetBooking(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)

	_, err = svc.GetBooking(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReserve_ConcurrentAttempts(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	slots := repository.NewSlotDefinitionRepository(db)
	require.NoError(t, slots.ReplaceForCourt(ctx, 1, []domain.CourtSlotDefinition{
		{SlotIndex: 2, StartTime: "10:00", EndTime: "11:00"},
	}))
	svc := NewService(repository.NewBookingRepository(db), slots, zaptest.NewLogger(t))

	const attempts = 4
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.UserID = int64(i + 1)
			_, errs[i] = svc.Reserve(ctx, req)
		}(i)
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrConflict):
			conflicted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)

	var live int64
	require.NoError(t, db.Model(&domain.Booking{}).
		Where("court_id = ? AND date = ? AND slot_index = ?", 1, "2026-10-15", 2).
		Count(&live).Error)
	assert.Equal(t, int64(1), live)
}
