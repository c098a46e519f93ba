package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	OwnerID uuid.UUID
}

// BudgetOutput is a budget with its current status.
type BudgetOutput struct {
	Budget *entity.Budget
	Status CategoryStatus
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetOutput
}

// ListBudgetsUseCase handles listing budgets logic.
type ListBudgetsUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute lists budgets in creation order, each with its rolling status.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindAll(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	records, err := uc.expenseRepo.FindAll(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	now := uc.clock.Now()
	output := &ListBudgetsOutput{
		Budgets: make([]*BudgetOutput, 0, len(budgets)),
	}
	for _, b := range budgets {
		output.Budgets = append(output.Budgets, &BudgetOutput{
			Budget: b,
			Status: BudgetStatus(records, b.CategoryName, b.Amount, b.Period, now),
		})
	}
	return output, nil
}
