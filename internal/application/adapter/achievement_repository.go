// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// AchievementRepository stores the gamification ledger of an owner.
type AchievementRepository interface {
	// Find returns the stored state or domainerror.ErrAchievementStateNotFound.
	Find(ctx context.Context, ownerID uuid.UUID) (*entity.AchievementState, error)

	// Save overwrites the stored state.
	Save(ctx context.Context, state *entity.AchievementState) error
}

// InsightCursorRepository stores the rotation index of the insights panel.
type InsightCursorRepository interface {
	// GetIndex returns the stored index and whether one was stored.
	GetIndex(ctx context.Context, ownerID uuid.UUID) (int, bool, error)

	// SetIndex overwrites the stored index.
	SetIndex(ctx context.Context, ownerID uuid.UUID, index int) error
}
