package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
)

// GetInsightsInput represents the input for reading the insights panel.
type GetInsightsInput struct {
	OwnerID uuid.UUID
}

// GetInsightsOutput holds every card and the persisted rotation index.
type GetInsightsOutput struct {
	Insights []Insight `json:"insights"`
	Index    int       `json:"index"`
	Current  Insight   `json:"current"`
}

// GetInsightsUseCase computes the insights panel.
type GetInsightsUseCase struct {
	loader *workspace.Loader
	clock  adapter.Clock
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(loader *workspace.Loader, clock adapter.Clock) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute returns all five cards.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	return build(ws, ws.InsightIndex, uc.clock), nil
}

// RotateInsightUseCase advances the rotation index.
type RotateInsightUseCase struct {
	loader *workspace.Loader
	clock  adapter.Clock
}

// NewRotateInsightUseCase creates a new RotateInsightUseCase instance.
func NewRotateInsightUseCase(loader *workspace.Loader, clock adapter.Clock) *RotateInsightUseCase {
	return &RotateInsightUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute moves to the next card, wrapping after the fifth.
func (uc *RotateInsightUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	next := Next(ws.InsightIndex)
	if err := uc.loader.Repositories().InsightCursor.SetIndex(ctx, input.OwnerID, next); err != nil {
		return nil, fmt.Errorf("failed to save insight index: %w", err)
	}
	return build(ws, next, uc.clock), nil
}

// Next returns the index after i. Stored values out of range are folded back.
func Next(i int) int {
	return (normalize(i) + 1) % Count
}

func normalize(i int) int {
	i %= Count
	if i < 0 {
		i += Count
	}
	return i
}

func build(ws *workspace.Workspace, index int, clock adapter.Clock) *GetInsightsOutput {
	insights := Generate(ws.Expenses, ws.Achievements.Streak, clock.Now())
	index = normalize(index)
	return &GetInsightsOutput{
		Insights: insights,
		Index:    index,
		Current:  insights[index],
	}
}
