package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// GetSnapshotInput represents the input for an analytics snapshot.
type GetSnapshotInput struct {
	OwnerID uuid.UUID
	Period  Period
}

// GetSnapshotOutput represents the records and total of one period.
type GetSnapshotOutput struct {
	Period      Period            `json:"period"`
	WindowStart time.Time         `json:"window_start"`
	Total       decimal.Decimal   `json:"total"`
	Records     []*entity.Expense `json:"records"`
}

// GetSnapshotUseCase handles period analytics.
type GetSnapshotUseCase struct {
	loader *workspace.Loader
	clock  adapter.Clock
}

// NewGetSnapshotUseCase creates a new GetSnapshotUseCase instance.
func NewGetSnapshotUseCase(loader *workspace.Loader, clock adapter.Clock) *GetSnapshotUseCase {
	return &GetSnapshotUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute filters the owner's records to the requested period. Each view is
// counted in the analytics_views stat.
func (uc *GetSnapshotUseCase) Execute(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	if _, err := ParsePeriod(string(input.Period)); err != nil {
		return nil, err
	}

	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	now := uc.clock.Now()
	filtered := FilterByPeriod(ws.Expenses, input.Period, now)

	ws.Achievements.IncrementStat(entity.StatAnalyticsViews)
	ws.Achievements.UpdatedAt = now.UTC()
	if err := uc.loader.Repositories().Achievements.Save(ctx, ws.Achievements); err != nil {
		return nil, fmt.Errorf("failed to save achievement stats: %w", err)
	}

	return &GetSnapshotOutput{
		Period:      input.Period,
		WindowStart: WindowStart(input.Period, now),
		Total:       filtered.Total,
		Records:     filtered.Records,
	}, nil
}
