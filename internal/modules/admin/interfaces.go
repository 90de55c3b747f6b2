package admin

import (
	"context"

	"courtbooking/internal/domain"
)

type SlotDefinitionRepository interface {
	ListByCourt(ctx context.Context, courtID int64) ([]domain.CourtSlotDefinition, error)
	ReplaceForCourt(ctx context.Context, courtID int64, defs []domain.CourtSlotDefinition) error
}

type PriceSettingRepository interface {
	ListActiveByKey(ctx context.Context, p domain.PriceSetting) ([]domain.PriceSetting, error)
	ListActive(ctx context.Context) ([]domain.PriceSetting, error)
	Create(ctx context.Context, p *domain.PriceSetting) error
	Deactivate(ctx context.Context, id int64) (bool, error)
}

type HolidayRepository interface {
	Create(ctx context.Context, h *domain.HolidayDate) error
	List(ctx context.Context) ([]domain.HolidayDate, error)
}
