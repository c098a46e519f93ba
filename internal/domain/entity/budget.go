// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the rolling window a limit or budget covers.
type BudgetPeriod string

const (
	BudgetPeriodWeek  BudgetPeriod = "week"
	BudgetPeriodMonth BudgetPeriod = "month"
)

// IsValid reports whether the period is week or month.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetPeriodWeek || p == BudgetPeriodMonth
}

// DefaultSpendingLimitAmount is the seeded global limit.
var DefaultSpendingLimitAmount = decimal.NewFromInt(1000)

// SpendingLimit is the single global spending cap of an owner.
type SpendingLimit struct {
	OwnerID   uuid.UUID
	Amount    decimal.Decimal
	Period    BudgetPeriod
	UpdatedAt time.Time
}

// DefaultSpendingLimit returns the seeded 1000/month limit.
func DefaultSpendingLimit(ownerID uuid.UUID) *SpendingLimit {
	return &SpendingLimit{
		OwnerID:   ownerID,
		Amount:    DefaultSpendingLimitAmount,
		Period:    BudgetPeriodMonth,
		UpdatedAt: time.Now().UTC(),
	}
}

// Budget is a per-category spending cap. At most one exists per
// (CategoryName, Period) pair.
type Budget struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Period       BudgetPeriod
	CreatedAt    time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(ownerID uuid.UUID, categoryName string, amount decimal.Decimal, period BudgetPeriod) *Budget {
	return &Budget{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		CategoryName: categoryName,
		Amount:       amount,
		Period:       period,
		CreatedAt:    time.Now().UTC(),
	}
}
