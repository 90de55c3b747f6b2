package repository

import (
	"context"

	"gorm.io/gorm"

	"courtbooking/internal/domain"
)

type PriceSettingRepository struct {
	db *gorm.DB
}

func NewPriceSettingRepository(db *gorm.DB) *PriceSettingRepository {
	return &PriceSettingRepository{db: db}
}

// PriceLookup selects one specificity tier. A nil CourtID or SlotIndex
// matches only rows where that column is NULL.
type PriceLookup struct {
	CourtID   *int64
	SlotIndex *int
	DayType   domain.DayType
	Date      string
}

// FindEffective returns every active setting of the tier that covers Date.
func (r *PriceSettingRepository) FindEffective(ctx context.Context, q PriceLookup) ([]domain.PriceSetting, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.PriceSetting{}).
		Where("is_active = ?", true).
		Where("day_type = ?", q.DayType).
		Where("effective_from <= ?", q.Date).
		Where("(effective_to IS NULL OR effective_to >= ?)", q.Date)

	if q.CourtID != nil {
		tx = tx.Where("court_id = ?", *q.CourtID)
	} else {
		tx = tx.Where("court_id IS NULL")
	}
	if q.SlotIndex != nil {
		tx = tx.Where("slot_index = ?", *q.SlotIndex)
	} else {
		tx = tx.Where("slot_index IS NULL")
	}

	var rows []domain.PriceSetting
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListActiveByKey returns active settings sharing the (court, slot, day type)
// key of p, whatever their effective range.
func (r *PriceSettingRepository) ListActiveByKey(ctx context.Context, p domain.PriceSetting) ([]domain.PriceSetting, error) {
	tx := r.db.WithContext(ctx).
		Where("is_active = ? AND day_type = ?", true, p.DayType)
	if p.CourtID != nil {
		tx = tx.Where("court_id = ?", *p.CourtID)
	} else {
		tx = tx.Where("court_id IS NULL")
	}
	if p.SlotIndex != nil {
		tx = tx.Where("slot_index = ?", *p.SlotIndex)
	} else {
		tx = tx.Where("slot_index IS NULL")
	}

	var rows []domain.PriceSetting
	if err := tx.Order("effective_from ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PriceSettingRepository) ListActive(ctx context.Context) ([]domain.PriceSetting, error) {
	var rows []domain.PriceSetting
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PriceSettingRepository) Create(ctx context.Context, p *domain.PriceSetting) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Deactivate reports false when no setting has that id.
func (r *PriceSettingRepository) Deactivate(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.PriceSetting{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
