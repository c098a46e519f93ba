package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	OwnerID uuid.UUID
}

// ListExpensesOutput represents the full record collection.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    decimal.Decimal
}

// ListExpensesUseCase handles listing expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute returns every record in insertion order.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	records, err := uc.expenseRepo.FindAll(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return &ListExpensesOutput{
		Expenses: records,
		Total:    total,
	}, nil
}
