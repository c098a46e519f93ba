// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for per-category budget persistence.
type BudgetRepository interface {
	// FindAll retrieves all budgets of an owner in creation order.
	FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Budget, error)

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Budget, error)

	// ExistsByCategoryAndPeriod checks the (category, period) uniqueness rule.
	ExistsByCategoryAndPeriod(ctx context.Context, ownerID uuid.UUID, categoryName string, period entity.BudgetPeriod) (bool, error)

	// Create persists a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// SpendingLimitRepository stores the single global limit of an owner.
type SpendingLimitRepository interface {
	// Find returns the stored limit or domainerror.ErrSpendingLimitNotFound.
	Find(ctx context.Context, ownerID uuid.UUID) (*entity.SpendingLimit, error)

	// Save overwrites the stored limit.
	Save(ctx context.Context, limit *entity.SpendingLimit) error
}
