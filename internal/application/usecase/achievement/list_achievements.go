package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ListAchievementsInput represents the input for listing achievements.
type ListAchievementsInput struct {
	OwnerID uuid.UUID
}

// AchievementItem is one catalog entry joined with the owner's unlock state.
type AchievementItem struct {
	Definition entity.AchievementDefinition
	// Supported is false for catalogued kinds that can never unlock yet.
	Supported  bool
	Unlocked   bool
	UnlockedAt *time.Time
	Showcased  bool
}

// ListAchievementsOutput represents the achievement board.
type ListAchievementsOutput struct {
	Achievements   []AchievementItem
	Streak         entity.Streak
	UnlockedCount  int
	ShowcasedCount int
	HasUnseen      bool
}

// ListAchievementsUseCase handles listing the achievement board.
type ListAchievementsUseCase struct {
	loader *workspace.Loader
}

// NewListAchievementsUseCase creates a new ListAchievementsUseCase instance.
func NewListAchievementsUseCase(loader *workspace.Loader) *ListAchievementsUseCase {
	return &ListAchievementsUseCase{loader: loader}
}

// Execute returns the whole catalog in evaluation order.
func (uc *ListAchievementsUseCase) Execute(ctx context.Context, input ListAchievementsInput) (*ListAchievementsOutput, error) {
	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	state := ws.Achievements

	catalog := entity.AchievementCatalog()
	items := make([]AchievementItem, 0, len(catalog))
	for _, def := range catalog {
		item := AchievementItem{
			Definition: def,
			Supported:  IsSupported(def.Requirement),
		}
		if badge, ok := state.Badge(def.ID); ok {
			unlockedAt := badge.UnlockedAt
			item.Unlocked = true
			item.UnlockedAt = &unlockedAt
			item.Showcased = badge.Showcased
		}
		items = append(items, item)
	}

	return &ListAchievementsOutput{
		Achievements:   items,
		Streak:         state.Streak,
		UnlockedCount:  len(state.UnlockedBadges),
		ShowcasedCount: state.ShowcasedCount(),
		HasUnseen:      state.HasUnseen,
	}, nil
}
