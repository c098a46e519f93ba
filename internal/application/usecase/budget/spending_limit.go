package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// SetSpendingLimitInput represents the input for changing the global limit.
type SetSpendingLimitInput struct {
	OwnerID uuid.UUID
	Amount  decimal.Decimal
	Period  entity.BudgetPeriod
}

// SetSpendingLimitUseCase overwrites the singleton spending limit.
type SetSpendingLimitUseCase struct {
	limitRepo adapter.SpendingLimitRepository
	clock     adapter.Clock
}

// NewSetSpendingLimitUseCase creates a new SetSpendingLimitUseCase instance.
func NewSetSpendingLimitUseCase(limitRepo adapter.SpendingLimitRepository, clock adapter.Clock) *SetSpendingLimitUseCase {
	return &SetSpendingLimitUseCase{
		limitRepo: limitRepo,
		clock:     clock,
	}
}

// Execute replaces the limit. No history is kept.
func (uc *SetSpendingLimitUseCase) Execute(ctx context.Context, input SetSpendingLimitInput) (*entity.SpendingLimit, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"limit must be greater than zero",
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

	limit := &entity.SpendingLimit{
		OwnerID:   input.OwnerID,
		Amount:    input.Amount,
		Period:    input.Period,
		UpdatedAt: uc.clock.Now().UTC(),
	}
	if err := uc.limitRepo.Save(ctx, limit); err != nil {
		return nil, fmt.Errorf("failed to save spending limit: %w", err)
	}

	slog.Info("Spending limit updated", "owner_id", input.OwnerID, "amount", limit.Amount.String(), "period", limit.Period)
	return limit, nil
}

// GetSpendingStatusInput represents the input for reading the limit status.
type GetSpendingStatusInput struct {
	OwnerID uuid.UUID
}

// GetSpendingStatusUseCase computes the global limit status.
type GetSpendingStatusUseCase struct {
	loader *workspace.Loader
	clock  adapter.Clock
}

// NewGetSpendingStatusUseCase creates a new GetSpendingStatusUseCase instance.
func NewGetSpendingStatusUseCase(loader *workspace.Loader, clock adapter.Clock) *GetSpendingStatusUseCase {
	return &GetSpendingStatusUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute loads the workspace, seeding the default limit when absent.
func (uc *GetSpendingStatusUseCase) Execute(ctx context.Context, input GetSpendingStatusInput) (*LimitStatus, error) {
	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	status := SpendingStatus(ws.Expenses, ws.Limit, uc.clock.Now())
	return &status, nil
}
