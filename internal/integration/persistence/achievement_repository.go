// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// achievementRepository implements the adapter.AchievementRepository interface.
type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new achievement repository instance.
func NewAchievementRepository(db *gorm.DB) adapter.AchievementRepository {
	return &achievementRepository{db: db}
}

// Find returns the stored ledger of an owner.
func (r *achievementRepository) Find(ctx context.Context, ownerID uuid.UUID) (*entity.AchievementState, error) {
	var stateModel model.AchievementStateModel
	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&stateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAchievementStateNotFound
		}
		return nil, result.Error
	}
	return stateModel.ToEntity(), nil
}

// Save upserts the ledger row of an owner.
func (r *achievementRepository) Save(ctx context.Context, state *entity.AchievementState) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model.AchievementStateFromEntity(state)).Error
}

// insightCursorRepository implements the adapter.InsightCursorRepository interface.
type insightCursorRepository struct {
	db *gorm.DB
}

// NewInsightCursorRepository creates a new insight cursor repository instance.
func NewInsightCursorRepository(db *gorm.DB) adapter.InsightCursorRepository {
	return &insightCursorRepository{db: db}
}

// GetIndex returns the stored rotation index.
func (r *insightCursorRepository) GetIndex(ctx context.Context, ownerID uuid.UUID) (int, bool, error) {
	var cursor model.InsightCursorModel
	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&cursor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, result.Error
	}
	return cursor.Index, true, nil
}

// SetIndex upserts the rotation index.
func (r *insightCursorRepository) SetIndex(ctx context.Context, ownerID uuid.UUID, index int) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&model.InsightCursorModel{
			OwnerID:   ownerID,
			Index:     index,
			UpdatedAt: time.Now().UTC(),
		}).Error
}
