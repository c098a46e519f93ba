package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

type ListCategoriesInput struct {
	OwnerID uuid.UUID
}

type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput is a category with its all-time usage.
type CategoryOutput struct {
	Category     *entity.Category
	ExpenseCount int
	Total        decimal.Decimal
	// Deletable is false for defaults and for names still used by expenses.
	Deletable bool
}

// ListCategoriesUseCase lists categories, seeding defaults on first access.
type ListCategoriesUseCase struct {
	loader *workspace.Loader
}

func NewListCategoriesUseCase(loader *workspace.Loader) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{loader: loader}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	usage := tally(ws.Expenses)
	items := make([]*CategoryOutput, len(ws.Categories))
	for i, c := range ws.Categories {
		u := usage[c.Name]
		items[i] = &CategoryOutput{
			Category:     c,
			ExpenseCount: u.count,
			Total:        u.total,
			Deletable:    !c.IsDefault && u.count == 0,
		}
	}
	return &ListCategoriesOutput{Categories: items}, nil
}

type usage struct {
	count int
	total decimal.Decimal
}

// tally groups expenses by exact category name.
func tally(records []*entity.Expense) map[string]usage {
	out := make(map[string]usage)
	for _, r := range records {
		u := out[r.Category]
		u.count++
		u.total = u.total.Add(r.Amount)
		out[r.Category] = u
	}
	return out
}
