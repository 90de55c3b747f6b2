// Package server assembles repositories, services and HTTP routes into one
// application value shared by the binaries.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"courtbooking/internal/config"
	"courtbooking/internal/middleware"
	"courtbooking/internal/modules/admin"
	"courtbooking/internal/modules/availability"
	"courtbooking/internal/modules/booking"
	"courtbooking/internal/modules/calendar"
	"courtbooking/internal/modules/pricing"
	"courtbooking/internal/modules/sweeper"
	"courtbooking/internal/repository"
)

type App struct {
	Router     *gin.Engine
	Sweeper    *sweeper.Sweeper
	Classifier *calendar.Classifier
	Prices     *pricing.Resolver
	Slots      *availability.Resolver
	Bookings   *booking.Service
	Admin      *admin.Service
}

func New(db *gorm.DB, cfg *config.Config, log *zap.Logger, opts ...sweeper.Option) *App {
	slotRepo := repository.NewSlotDefinitionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	occupancyRepo := repository.NewOccupancyRepository(db)
	priceRepo := repository.NewPriceSettingRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)

	classifier := calendar.NewClassifier(holidayRepo, cfg.WeekendDays)
	prices := pricing.NewResolver(priceRepo, classifier)
	slots := availability.NewResolver(slotRepo, bookingRepo, classifier, prices, log.Named("availability"))
	bookings := booking.NewService(bookingRepo, slotRepo, log.Named("booking"))
	adminSvc := admin.NewService(slotRepo, priceRepo, holidayRepo, log.Named("admin"))

	sw := sweeper.New(occupancyRepo, sweeper.Config{
		Interval:   cfg.SweepInterval,
		Location:   cfg.Location,
		RunOnStart: cfg.SweepOnStart,
	}, log, opts...)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(log.Named("http")),
		middleware.AccessLog(log.Named("http")),
		middleware.CORS(cfg.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		calendar.NewHandler(classifier, cfg.Location).RegisterRoutes(v1)
		pricing.NewHandler(prices, slotRepo, cfg.Location).RegisterRoutes(v1)
		availability.NewHandler(slots, occupancyRepo, cfg.Location).RegisterRoutes(v1)

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.AdminTokenAuth(cfg.AdminToken, log.Named("auth")))
		admin.NewHandler(adminSvc).RegisterRoutes(adminGroup)
	}

	return &App{
		Router:     r,
		Sweeper:    sw,
		Classifier: classifier,
		Prices:     prices,
		Slots:      slots,
		Bookings:   bookings,
		Admin:      adminSvc,
	}
}
