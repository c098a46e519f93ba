package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// GetCategoryBreakdownInput represents the input for getting category breakdown.
type GetCategoryBreakdownInput struct {
	OwnerID uuid.UUID
	Period  Period
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	Period     Period          `json:"period"`
	Total      decimal.Decimal `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute retrieves spending breakdown by category for the given period.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	if _, err := ParsePeriod(string(input.Period)); err != nil {
		return nil, err
	}

	records, err := uc.expenseRepo.FindAll(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	filtered := FilterByPeriod(records, input.Period, uc.clock.Now())

	return &GetCategoryBreakdownOutput{
		Period:     input.Period,
		Total:      filtered.Total,
		Categories: CategoryTotals(filtered.Records),
	}, nil
}
