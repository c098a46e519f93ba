package achievement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
)

// MarkSeenInput represents the input for acknowledging new achievements.
type MarkSeenInput struct {
	OwnerID uuid.UUID
}

// MarkSeenUseCase clears the unseen-achievements flag.
type MarkSeenUseCase struct {
	loader *workspace.Loader
	clock  adapter.Clock
}

// NewMarkSeenUseCase creates a new MarkSeenUseCase instance.
func NewMarkSeenUseCase(loader *workspace.Loader, clock adapter.Clock) *MarkSeenUseCase {
	return &MarkSeenUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute clears HasUnseen. It is a no-op write when nothing is unseen.
func (uc *MarkSeenUseCase) Execute(ctx context.Context, input MarkSeenInput) error {
	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to load workspace: %w", err)
	}
	if !ws.Achievements.HasUnseen {
		return nil
	}

	ws.Achievements.HasUnseen = false
	ws.Achievements.UpdatedAt = uc.clock.Now().UTC()
	if err := uc.loader.Repositories().Achievements.Save(ctx, ws.Achievements); err != nil {
		return fmt.Errorf("failed to save achievement state: %w", err)
	}
	return nil
}
