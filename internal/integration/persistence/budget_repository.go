// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{db: db}
}

// FindAll retrieves all budgets of an owner in creation order.
func (r *budgetRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// ExistsByCategoryAndPeriod checks if a budget already covers the pair.
func (r *budgetRepository) ExistsByCategoryAndPeriod(ctx context.Context, ownerID uuid.UUID, categoryName string, period entity.BudgetPeriod) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("owner_id = ? AND category_name = ? AND period = ?", ownerID, categoryName, string(period)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Create persists a new budget.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Create(model.BudgetFromEntity(budget)).Error
}

// Delete removes a budget.
func (r *budgetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// spendingLimitRepository implements the adapter.SpendingLimitRepository interface.
type spendingLimitRepository struct {
	db *gorm.DB
}

// NewSpendingLimitRepository creates a new spending limit repository instance.
func NewSpendingLimitRepository(db *gorm.DB) adapter.SpendingLimitRepository {
	return &spendingLimitRepository{db: db}
}

// Find returns the stored limit of an owner.
func (r *spendingLimitRepository) Find(ctx context.Context, ownerID uuid.UUID) (*entity.SpendingLimit, error) {
	var limitModel model.SpendingLimitModel
	result := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&limitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSpendingLimitNotFound
		}
		return nil, result.Error
	}
	return limitModel.ToEntity(), nil
}

// Save upserts the limit row of an owner.
func (r *spendingLimitRepository) Save(ctx context.Context, limit *entity.SpendingLimit) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model.SpendingLimitFromEntity(limit)).Error
}
