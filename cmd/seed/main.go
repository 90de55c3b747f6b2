package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"courtbooking/internal/config"
	"courtbooking/internal/database"
	"courtbooking/internal/domain"
	"courtbooking/internal/logger"
	"courtbooking/internal/modules/admin"
	"courtbooking/internal/modules/booking"
	"courtbooking/internal/repository"
)

const courts = 3

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if config.IsProdLike(cfg.AppEnv) {
		log.Fatal("refusing to seed a prod-like environment")
	}

	lg, err := logger.New(false, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, lg)
	if err != nil {
		lg.Fatal("db connect failed", zap.Error(err))
	}

	lg.Info("running migrations")
	if err := database.Migrate(db); err != nil {
		lg.Fatal("migrate failed", zap.Error(err))
	}

	lg.Info("cleaning old data")
	for _, table := range []string{"slot_occupancies", "bookings", "price_settings", "holiday_dates", "court_slot_definitions"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			lg.Fatal("cleanup failed", zap.String("table", table), zap.Error(err))
		}
	}

	ctx := context.Background()
	slotRepo := repository.NewSlotDefinitionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	adminSvc := admin.NewService(slotRepo, repository.NewPriceSettingRepository(db), repository.NewHolidayRepository(db), lg)
	bookingSvc := booking.NewService(bookingRepo, slotRepo, lg)

	// ================== SLOTS ==================
	// 08:00-22:00 in one-hour slots, indices 0..13.
	var slots []admin.SlotInput
	for i, h := 0, 8; h < 22; i, h = i+1, h+1 {
		start := time.Date(0, 1, 1, h, 0, 0, 0, time.UTC)
		slots = append(slots, admin.SlotInput{
			SlotIndex: i,
			StartTime: start.Format(domain.ClockLayout),
			EndTime:   start.Add(time.Hour).Format(domain.ClockLayout),
		})
	}
	for courtID := int64(1); courtID <= courts; courtID++ {
		if _, err := adminSvc.ReplaceSlots(ctx, courtID, admin.ReplaceSlotsRequest{Slots: slots}); err != nil {
			lg.Fatal("seed slots failed", zap.Int64("court_id", courtID), zap.Error(err))
		}
	}

	// ================== PRICES ==================
	year := time.Now().In(cfg.Location).Year()
	from := time.Date(year, 1, 1, 0, 0, 0, 0, cfg.Location).Format(domain.DateLayout)
	courtOne := int64(1)
	evening := 11 // 19:00-20:00
	prices := []admin.CreatePriceSettingRequest{
		{DayType: domain.DayWeekday, UnitPrice: 100000, EffectiveFrom: from},
		{DayType: domain.DayWeekend, UnitPrice: 140000, EffectiveFrom: from},
		{DayType: domain.DayHoliday, UnitPrice: 160000, EffectiveFrom: from},
		{CourtID: &courtOne, DayType: domain.DayWeekday, UnitPrice: 120000, EffectiveFrom: from},
		{SlotIndex: &evening, DayType: domain.DayWeekday, UnitPrice: 130000, EffectiveFrom: from},
	}
	for _, p := range prices {
		if _, err := adminSvc.CreatePriceSetting(ctx, p); err != nil {
			lg.Fatal("seed price failed", zap.Error(err))
		}
	}

	// ================== HOLIDAYS ==================
	holidays := []admin.CreateHolidayRequest{
		{Date: "2020-01-01", IsRecurringYearly: true, Name: "New Year"},
		{Date: "2020-03-08", IsRecurringYearly: true, Name: "International Women's Day"},
		{Date: "2020-12-16", IsRecurringYearly: true, Name: "Independence Day"},
	}
	for _, h := range holidays {
		if _, err := adminSvc.CreateHoliday(ctx, h); err != nil {
			lg.Fatal("seed holiday failed", zap.Error(err))
		}
	}

	// ================== BOOKINGS ==================
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().In(cfg.Location)

	// History: terminal bookings for the past two weeks.
	terminal := []domain.BookingStatus{domain.BookingCompleted, domain.BookingCancelled, domain.BookingFailed}
	for i := 0; i < 40; i++ {
		b := domain.Booking{
			CourtID:   int64(rng.Intn(courts) + 1),
			Date:      domain.DateKey(today.AddDate(0, 0, -(rng.Intn(14) + 1))),
			SlotIndex: rng.Intn(len(slots)),
			UserID:    int64(rng.Intn(20) + 1),
			Status:    terminal[rng.Intn(len(terminal))],
		}
		if err := bookingRepo.Create(ctx, &b); err != nil {
			lg.Fatal("seed booking failed", zap.Error(err))
		}
	}

	// Live: reservations for today and the next few days through the guard.
	reserved, taken := 0, 0
	for i := 0; i < 25; i++ {
		_, err := bookingSvc.Reserve(ctx, booking.ReserveRequest{
			CourtID:   int64(rng.Intn(courts) + 1),
			Date:      domain.DateKey(today.AddDate(0, 0, rng.Intn(4))),
			SlotIndex: rng.Intn(len(slots)),
			UserID:    int64(rng.Intn(20) + 1),
		})
		switch {
		case err == nil:
			reserved++
		case errors.Is(err, domain.ErrConflict):
			taken++
		default:
			lg.Fatal("seed reservation failed", zap.Error(err))
		}
	}

	// Confirm roughly half of the live bookings so both live states exist.
	res := db.Model(&domain.Booking{}).
		Where("status = ? AND id % 2 = 0", domain.BookingPending).
		Update("status", domain.BookingConfirmed)
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		lg.Fatal("confirm bookings failed", zap.Error(res.Error))
	}

	lg.Info("seed completed",
		zap.Int("courts", courts),
		zap.Int("slots_per_court", len(slots)),
		zap.Int("price_settings", len(prices)),
		zap.Int("holidays", len(holidays)),
		zap.Int("reserved", reserved),
		zap.Int("collisions", taken),
		zap.Int64("confirmed", res.RowsAffected),
	)
}
