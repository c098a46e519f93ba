// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_budget_owner_category_period,unique"`
	CategoryName string          `gorm:"type:varchar(50);not null;index:idx_budget_owner_category_period,unique"`
	Period       string          `gorm:"type:varchar(10);not null;index:idx_budget_owner_category_period,unique"`
	Amount       decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		CategoryName: m.CategoryName,
		Amount:       m.Amount,
		Period:       entity.BudgetPeriod(m.Period),
		CreatedAt:    m.CreatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:           budget.ID,
		OwnerID:      budget.OwnerID,
		CategoryName: budget.CategoryName,
		Period:       string(budget.Period),
		Amount:       budget.Amount,
		CreatedAt:    budget.CreatedAt,
	}
}

// SpendingLimitModel represents the spending_limits table, one row per owner.
type SpendingLimitModel struct {
	OwnerID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount    decimal.Decimal `gorm:"type:numeric;not null"`
	Period    string          `gorm:"type:varchar(10);not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SpendingLimitModel.
func (SpendingLimitModel) TableName() string {
	return "spending_limits"
}

// ToEntity converts a SpendingLimitModel to a domain SpendingLimit entity.
func (m *SpendingLimitModel) ToEntity() *entity.SpendingLimit {
	return &entity.SpendingLimit{
		OwnerID:   m.OwnerID,
		Amount:    m.Amount,
		Period:    entity.BudgetPeriod(m.Period),
		UpdatedAt: m.UpdatedAt,
	}
}

// SpendingLimitFromEntity creates a SpendingLimitModel from a domain SpendingLimit entity.
func SpendingLimitFromEntity(limit *entity.SpendingLimit) *SpendingLimitModel {
	return &SpendingLimitModel{
		OwnerID:   limit.OwnerID,
		Amount:    limit.Amount,
		Period:    string(limit.Period),
		UpdatedAt: limit.UpdatedAt,
	}
}
