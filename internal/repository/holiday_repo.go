package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"courtbooking/internal/domain"
)

type HolidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// FindMatching returns holidays on date itself plus recurring holidays with
// the same month and day.
func (r *HolidayRepository) FindMatching(ctx context.Context, date string) ([]domain.HolidayDate, error) {
	monthDay := ""
	if len(date) == len(domain.DateLayout) {
		monthDay = date[5:]
	}

	var rows []domain.HolidayDate
	err := r.db.WithContext(ctx).
		Where("date = ? OR (is_recurring_yearly = ? AND month_day = ?)", date, true, monthDay).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *HolidayRepository) Create(ctx context.Context, h *domain.HolidayDate) error {
	if len(h.Date) == len(domain.DateLayout) {
		h.MonthDay = h.Date[5:]
	}
	if err := r.db.WithContext(ctx).Create(h).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: holiday %s already exists", domain.ErrConflict, h.Date)
		}
		return err
	}
	return nil
}

func (r *HolidayRepository) List(ctx context.Context) ([]domain.HolidayDate, error) {
	var rows []domain.HolidayDate
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
