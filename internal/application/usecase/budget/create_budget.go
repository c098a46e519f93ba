package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	OwnerID      uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Period       entity.BudgetPeriod
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
	Status CategoryStatus
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	loader *workspace.Loader
	clock  adapter.Clock
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(loader *workspace.Loader, clock adapter.Clock) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"category is required",
			nil,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if !input.Period.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'week' or 'month'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	if !hasCategory(ws.Categories, name) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	budgetRepo := uc.loader.Repositories().Budgets
	exists, err := budgetRepo.ExistsByCategoryAndPeriod(ctx, input.OwnerID, name, input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			fmt.Sprintf("a %sly budget already exists for %s", input.Period, name),
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	budget := entity.NewBudget(input.OwnerID, name, input.Amount, input.Period)
	if err := budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
		Status: BudgetStatus(ws.Expenses, budget.CategoryName, budget.Amount, budget.Period, uc.clock.Now()),
	}, nil
}

func hasCategory(categories []*entity.Category, name string) bool {
	for _, c := range categories {
		if c.Name == name {
			return true
		}
	}
	return false
}
