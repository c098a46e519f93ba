package achievement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// RecordProgressInput carries the workspace as it stands after a confirmed
// append, with the new record already at the end of Expenses.
type RecordProgressInput struct {
	Workspace *workspace.Workspace
}

// RecordProgressOutput represents the streak and unlocks produced by one save.
type RecordProgressOutput struct {
	Streak        entity.Streak
	NewlyUnlocked []entity.AchievementDefinition
	// Notification is the first newly unlocked definition in catalog order.
	Notification *entity.AchievementDefinition
}

// RecordProgressUseCase updates the streak and unlocks achievements after a save.
type RecordProgressUseCase struct {
	achievementRepo adapter.AchievementRepository
	clock           adapter.Clock
	events          adapter.EventRecorder
}

// NewRecordProgressUseCase creates a new RecordProgressUseCase instance.
func NewRecordProgressUseCase(
	achievementRepo adapter.AchievementRepository,
	clock adapter.Clock,
	events adapter.EventRecorder,
) *RecordProgressUseCase {
	if events == nil {
		events = adapter.NopEventRecorder{}
	}
	return &RecordProgressUseCase{
		achievementRepo: achievementRepo,
		clock:           clock,
		events:          events,
	}
}

// Execute runs the streak update, then the unlock pass, then persists the
// ledger once.
func (uc *RecordProgressUseCase) Execute(ctx context.Context, input RecordProgressInput) (*RecordProgressOutput, error) {
	ws := input.Workspace
	state := ws.Achievements
	now := uc.clock.Now()

	state.Streak = UpdateStreak(state.Streak, now)
	state.IncrementStat(entity.StatExpensesLogged)

	unlocked := Evaluate(ws, now)
	if len(unlocked) > 0 {
		state.HasUnseen = true
	}
	state.UpdatedAt = now.UTC()

	if err := uc.achievementRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save achievement state: %w", err)
	}

	for _, def := range unlocked {
		slog.Info("Achievement unlocked", "owner_id", ws.OwnerID, "achievement_id", def.ID)
		uc.events.AchievementUnlocked(def.ID)
	}

	output := &RecordProgressOutput{
		Streak:        state.Streak,
		NewlyUnlocked: unlocked,
	}
	if len(unlocked) > 0 {
		first := unlocked[0]
		output.Notification = &first
	}
	return output, nil
}
