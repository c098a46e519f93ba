package achievement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// ToggleShowcaseInput represents the input for changing a badge's showcase flag.
type ToggleShowcaseInput struct {
	OwnerID       uuid.UUID
	AchievementID string
	Showcased     bool
}

// ToggleShowcaseOutput represents the badge after the change.
type ToggleShowcaseOutput struct {
	Badge          entity.UnlockedBadge
	ShowcasedCount int
}

// ToggleShowcaseUseCase handles showcasing and un-showcasing badges.
type ToggleShowcaseUseCase struct {
	loader *workspace.Loader
	clock  adapter.Clock
}

// NewToggleShowcaseUseCase creates a new ToggleShowcaseUseCase instance.
func NewToggleShowcaseUseCase(loader *workspace.Loader, clock adapter.Clock) *ToggleShowcaseUseCase {
	return &ToggleShowcaseUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute sets or clears the showcase flag. Setting is refused once
// entity.MaxShowcasedBadges badges are showcased; clearing always succeeds.
func (uc *ToggleShowcaseUseCase) Execute(ctx context.Context, input ToggleShowcaseInput) (*ToggleShowcaseOutput, error) {
	if _, ok := entity.FindAchievement(input.AchievementID); !ok {
		return nil, domainerror.NewAchievementError(
			domainerror.ErrCodeAchievementNotFound,
			domainerror.ErrAchievementNotFound.Error(),
			domainerror.ErrAchievementNotFound,
		)
	}

	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	state := ws.Achievements

	if !state.IsUnlocked(input.AchievementID) {
		return nil, domainerror.NewAchievementError(
			domainerror.ErrCodeAchievementLocked,
			domainerror.ErrAchievementLocked.Error(),
			domainerror.ErrAchievementLocked,
		)
	}

	if !state.SetShowcased(input.AchievementID, input.Showcased) {
		return nil, domainerror.NewAchievementError(
			domainerror.ErrCodeShowcaseFull,
			fmt.Sprintf("at most %d badges can be showcased", entity.MaxShowcasedBadges),
			domainerror.ErrShowcaseFull,
		)
	}

	state.UpdatedAt = uc.clock.Now().UTC()
	if err := uc.loader.Repositories().Achievements.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save achievement state: %w", err)
	}

	badge, _ := state.Badge(input.AchievementID)
	return &ToggleShowcaseOutput{
		Badge:          badge,
		ShowcasedCount: state.ShowcasedCount(),
	}, nil
}
