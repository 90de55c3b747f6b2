package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"courtbooking/internal/domain"
)

type SlotDefinitionRepository struct {
	db *gorm.DB
}

func NewSlotDefinitionRepository(db *gorm.DB) *SlotDefinitionRepository {
	return &SlotDefinitionRepository{db: db}
}

// ListByCourt returns the court's slot template ordered by slot index.
func (r *SlotDefinitionRepository) ListByCourt(ctx context.Context, courtID int64) ([]domain.CourtSlotDefinition, error) {
	var rows []domain.CourtSlotDefinition
	err := r.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Order("slot_index ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns nil, nil when the court has no slot with that index.
func (r *SlotDefinitionRepository) Get(ctx context.Context, courtID int64, slotIndex int) (*domain.CourtSlotDefinition, error) {
	var def domain.CourtSlotDefinition
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND slot_index = ?", courtID, slotIndex).
		Take(&def).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// ReplaceForCourt swaps the whole template of a court in one transaction.
func (r *SlotDefinitionRepository) ReplaceForCourt(ctx context.Context, courtID int64, defs []domain.CourtSlotDefinition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("court_id = ?", courtID).Delete(&domain.CourtSlotDefinition{}).Error; err != nil {
			return err
		}
		if len(defs) == 0 {
			return nil
		}
		for i := range defs {
			defs[i].ID = 0
			defs[i].CourtID = courtID
		}
		return tx.Create(&defs).Error
	})
}
